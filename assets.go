package datepicker

import (
	"embed"
	"io/fs"
)

//go:embed assets/*.css
var embeddedAssets embed.FS

// StylesheetName is the prebuilt static stylesheet shipped with the library.
const StylesheetName = "datepicker.css"

// AssetsFS exposes the prebuilt static assets so applications can serve them
// without a build step. The calendar widget script itself is an external
// dependency the application vendors and serves at the configured script
// href.
//
// Typical mount:
//
//	mux.Handle("/assets/datepicker/",
//	  http.StripPrefix("/assets/datepicker/",
//	    http.FileServerFS(datepicker.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

// StaticStylesheet returns the embedded prebuilt stylesheet content.
func StaticStylesheet() string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+StylesheetName)
	if err != nil {
		return ""
	}
	return string(data)
}
