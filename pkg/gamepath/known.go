package gamepath

// File extensions, lower-cased with the leading dot.
const (
	ExtMaster  = ".esm"
	ExtPlugin  = ".esp"
	ExtArchive = ".bsa"
	ExtNam     = ".nam"
	ExtDLL     = ".dll"
	ExtINI     = ".ini"
)

// Well-known files and folders of a Fallout: New Vegas installation.
var (
	Data         = New(Game, "Data")
	NVSEPlugins  = New(Game, "Data/NVSE/Plugins")
	NVSELoader   = New(Game, "nvse_loader.exe")
	NVSEVersion  = New(Game, "nvse_loader.version")
	ModLimitFix  = New(Game, "Data/NVSE/Plugins/mod_limit_fix.dll")
	FourGBBackup = New(Game, "FalloutNV_backup.exe")
	PrimaryFile  = New(Game, "FalloutNV.exe")
	DefaultINI   = New(Game, "Fallout_default.ini")

	FalloutINI       = New(Preferences, "Fallout.ini")
	FalloutCustomINI = New(Preferences, "FalloutCustom.ini")
	FalloutPrefsINI  = New(Preferences, "FalloutPrefs.ini")

	PluginsFile = New(AppData, "plugins.txt")
)

// IsPluginExtension reports whether ext is a master or plugin extension.
func IsPluginExtension(ext string) bool {
	return ext == ExtMaster || ext == ExtPlugin
}
