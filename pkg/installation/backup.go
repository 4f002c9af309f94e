package installation

import (
	"github.com/Punkwe1ght/modsync/pkg/gamepath"
)

var backedUpGameFolders = []gamepath.GamePath{
	gamepath.Data,
	gamepath.New(gamepath.Game, "NVSE"),
}

// IsIgnoredBackupPath reports whether p is left out of the vanilla backup.
// A full backup keeps everything. Otherwise archives are never backed up,
// other locations always are, and inside the game folder only Data and
// NVSE are kept.
func IsIgnoredBackupPath(p gamepath.GamePath, fullBackup bool) bool {
	if fullBackup {
		return false
	}
	if p.Extension() == gamepath.ExtArchive {
		return true
	}
	if p.Location != gamepath.Game {
		return false
	}
	for _, dir := range backedUpGameFolders {
		if p.InFolder(dir) {
			return false
		}
	}
	return true
}
