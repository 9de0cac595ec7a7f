package constants

const (
	AppName           = "trackly"
	Version           = "v0.3.0"
	DefaultConfigPath = "~/.config/trackly/trackly.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// PinnedCategoryTitle is the well-known heading of the synthetic leading
	// group that collects pinned trackers.
	PinnedCategoryTitle = "Pinned"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "trackly-"
	BackupFileSuffix = ".db"

	// Seed defaults used by `trackly init --seed`
	SeedCategoryHome   = "Home comfort"
	SeedCategoryJoy    = "Little joys"
	DefaultTrackerHue  = "#33CF69"
	DefaultTrackerMark = "🙂"
)
