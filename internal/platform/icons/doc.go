// Package icons defines the inline SVG icons the site renders.
//
// The catalog maps stable icon identifiers to labels and outline paths so
// content files can name an icon without carrying markup.
package icons
