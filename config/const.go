package config

import "strings"

// AppVersion is the version of the application, set at build time.
var AppVersion string

// AppName is the name of the application.
const AppName = "Shrink"

// AppID is the unique Fyne application ID.
const AppID = "com.dixieflatline76.shrink"

// WindowTitle is the title of the main window.
const WindowTitle = "Resize Images"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// Defaults applied by Load before environment overrides.
const (
	DefaultSize          = 640
	DefaultOutputDirName = "Resized Images"
	DefaultFilter        = "lanczos"
	DefaultJPEGQuality   = 95
)

// Environment variables read by Load.
const (
	EnvDefaultSize   = "SHRINK_DEFAULT_SIZE"
	EnvOutputDirName = "SHRINK_OUTPUT_DIR"
	EnvFilter        = "SHRINK_FILTER"
	EnvJPEGQuality   = "SHRINK_JPEG_QUALITY"
	EnvOpenOutput    = "SHRINK_OPEN_OUTPUT"
)
