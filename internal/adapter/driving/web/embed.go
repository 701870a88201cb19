package web

import "embed"

// StaticFS holds the embedded stylesheet and entrance-animation script.
//
//go:embed static/*
var StaticFS embed.FS
