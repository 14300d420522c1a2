// Package branding holds the public product name.
package branding

// AppName is the site name shown in titles and headers.
const AppName = "StopLaLiga"
