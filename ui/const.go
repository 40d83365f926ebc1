package ui

// Main window size.
const (
	windowWidth  = 460
	windowHeight = 220
)

// Error dialog size; long failure lists wrap inside it.
const (
	errorDialogWidth  = 420
	errorDialogHeight = 200
)

// Widget copy.
const (
	sizeLabel      = "Size (Pixel)"
	folderHint     = "Folder with images"
	browseLabel    = "Browse..."
	resizeLabel    = "Resize"
	aboutTitle     = "About"
	appIconName    = "app.svg"
	aboutTextName  = "about.txt"
	sizeDigitsOnly = `^[0-9]+$`
)
