package rules

import (
	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
)

// Source is the diagnostic source of every rule in this package.
const Source = "modsync.fnv"

func id(n int) diagnostics.ID { return diagnostics.ID{Source: Source, Number: n} }

var (
	ArchiveInvalidationDisabled = diagnostics.Template{
		ID:       id(1),
		Title:    "Archive Invalidation Disabled",
		Severity: diagnostics.Warning,
		Summary:  "Archive invalidation is not enabled, so loose asset mods (textures, meshes) will not load",
		Details: `Archive invalidation allows loose mod files to override assets packed in the game's BSA archives.
Without it, texture replacers, mesh replacements and other asset mods will not work.

Set ` + "`bInvalidateOlderFiles=1`" + ` in the ` + "`[Archive]`" + ` section of ` + "`FalloutCustom.ini`" + `
(located in ` + "`Documents/My Games/FalloutNV/`" + `).`,
	}

	FourGbPatcherNotDetected = diagnostics.Template{
		ID:       id(2),
		Title:    "4GB Patcher Not Detected",
		Severity: diagnostics.Warning,
		Summary:  "The 4GB patcher has not been applied; the game may crash with heavy mod loads",
		Details: `Fallout: New Vegas is a 32-bit application limited to 2GB of RAM by default. The 4GB patcher
enables Large Address Aware mode, allowing the game to use up to 4GB.

Download and run the FNV 4GB Patcher. After patching, ` + "`FalloutNV_backup.exe`" + `
will appear in the game folder.`,
	}

	PluginLimitWarning = diagnostics.Template{
		ID:       id(3),
		Title:    "Approaching Plugin Limit",
		Severity: diagnostics.Warning,
		Summary:  "Loadout has {PluginCount} plugins; the engine limit without Mod Limit Fix is {FunctionalLimit}",
		Details: `Fallout: New Vegas has a hard cap of {HardLimit} plugins (.esp + .esm). Without the Mod Limit Fix
NVSE plugin, the functional limit is {FunctionalLimit} due to an engine bug. Loading more than that
without Mod Limit Fix causes crashes and save corruption.

Install Mod Limit Fix, or reduce your plugin count.`,
	}

	PluginLimitExceeded = diagnostics.Template{
		ID:       id(4),
		Title:    "Plugin Limit Exceeded",
		Severity: diagnostics.Critical,
		Summary:  "Loadout has {PluginCount} plugins, exceeding the hard limit of {HardLimit}",
		Details: `Fallout: New Vegas cannot load more than {HardLimit} plugins (.esp + .esm combined). The game will
not start or will crash immediately with this many plugins.

Remove or merge plugins to bring the count below {HardLimit}.`,
	}

	ModLimitFixMissing = diagnostics.Template{
		ID:       id(5),
		Title:    "Mod Limit Fix Not Installed",
		Severity: diagnostics.Warning,
		Summary:  "Loadout has {PluginCount} plugins but Mod Limit Fix is not installed",
		Details: `With {PluginCount} plugins loaded, you have exceeded the vanilla engine's functional limit
of {FunctionalLimit} plugins. Without Mod Limit Fix this causes crashes, save corruption and FPS drops.

Mod Limit Fix is an NVSE plugin that raises the functional limit to 255.`,
	}

	XnvseMissing = diagnostics.Template{
		ID:       id(6),
		Title:    "xNVSE Not Detected",
		Severity: diagnostics.Warning,
		Summary:  "xNVSE is not installed but {NvseModCount} NVSE plugins in the loadout require it",
		Details: `{NvseModCount} files in the loadout are NVSE plugins (files in ` + "`Data/NVSE/Plugins/`" + `).
They require xNVSE (New Vegas Script Extender). Without it they silently fail to load.

Download xNVSE from its GitHub releases page and extract it to the game folder.`,
	}

	OrphanedArchive = diagnostics.Template{
		ID:       id(7),
		Title:    "Archive Will Not Load",
		Severity: diagnostics.Warning,
		Summary:  "{BsaName} has no matching plugin and is not listed in SArchiveList",
		Details: `The engine loads a BSA archive from ` + "`Data`" + ` only when a plugin with the same name is loaded,
when it is listed in ` + "`SArchiveList`" + `, or when it belongs to a DLC with a ` + "`.nam`" + ` marker.
None of these apply to ` + "`{BsaName}`" + `, so its assets are ignored.

Enable the plugin that ships with the archive, or add the archive to ` + "`SArchiveList`" + ` in ` + "`FalloutCustom.ini`" + `.`,
	}

	IniConflict = diagnostics.Template{
		ID:       id(8),
		Title:    "INI Setting Conflict",
		Severity: diagnostics.Warning,
		Summary:  "{ConflictCount} settings in {TargetIniFile} are set to different values by different INI tweaks",
		Details: `Several enabled INI tweaks target ` + "`{TargetIniFile}`" + ` and disagree on {ConflictCount} keys.
Only one value can win; the result depends on the order the tweaks are applied.

Disable all but one of the conflicting tweaks, or merge them by hand.`,
	}

	NvseVersionMismatch = diagnostics.Template{
		ID:       id(9),
		Title:    "xNVSE Version Too Old",
		Severity: diagnostics.Warning,
		Summary:  "{PluginName} requires xNVSE {RequiredVersion} but the installed version is {InstalledVersion}",
		Details: `{PluginName} declares that it needs xNVSE {RequiredVersion} or newer. The installed xNVSE
version is {InstalledVersion}. Plugins built against newer script extender versions may fail to load
or crash the game.

Update xNVSE from its GitHub releases page.`,
	}

	ProtontricksRequired = diagnostics.Template{
		ID:       id(10),
		Title:    "Protontricks Required for xNVSE",
		Severity: diagnostics.Warning,
		Summary:  "{NvseModCount} NVSE plugins need xNVSE, which requires protontricks under Proton",
		Details: `Running xNVSE under Proton needs ` + "`protontricks`" + ` to launch ` + "`nvse_loader.exe`" + ` inside the game's
Wine prefix. It was not found on this system.

Install protontricks from your distribution or Flathub.`,
	}

	FourGbUnderProton = diagnostics.Template{
		ID:       id(11),
		Title:    "4GB Patcher Under Proton",
		Severity: diagnostics.Warning,
		Summary:  "The 4GB patcher is applied; under Proton it needs a Wine DLL override",
		Details: `The 4GB patcher marks ` + "`FalloutNV.exe`" + ` as Large Address Aware. Under Proton the patched executable
can fail to start or silently run without the larger address space, depending on the Proton version.

If the game does not start, restore ` + "`FalloutNV_backup.exe`" + ` and use a Proton build known to work with the patch.`,
	}

	MissingMaster = diagnostics.Template{
		ID:       id(12),
		Title:    "Missing Master",
		Severity: diagnostics.Warning,
		Summary:  "{PluginName} requires {MasterName}, which is not installed",
		Details: "`{PluginName}`" + ` declares ` + "`{MasterName}`" + ` as a master. The game crashes on load when a master
is missing.

Install the mod that provides ` + "`{MasterName}`" + `, or disable ` + "`{PluginName}`" + `.`,
	}

	UnreadablePlugin = diagnostics.Template{
		ID:       id(13),
		Title:    "Unreadable Plugin",
		Severity: diagnostics.Suggestion,
		Summary:  "{PluginName} could not be read as a plugin: {Reason}",
		Details: `The header of ` + "`{PluginName}`" + ` could not be parsed, so its masters were not checked.
The file may be damaged or may not be a Fallout: New Vegas plugin.`,
	}
)
