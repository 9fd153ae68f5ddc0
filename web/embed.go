package web

import "embed"

// StaticFS embeds the dashboard single-page app (html/css/js).
//go:embed static/*
var StaticFS embed.FS
