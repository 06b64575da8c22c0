package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Timezones"
	AppID       = "com.github.tartampluch.go-timezones"
	LogFileName = "app.log"
	PidFileName = "go-timezones.pid"

	// ConfigDirName is the per-user directory (under os.UserConfigDir)
	// holding the persisted city selection.
	ConfigDirName  = "go-timezones"
	CitiesFileName = "cities.json"
)

// ThemeColorsPath is the omarchy theme palette location, relative to $HOME.
const ThemeColorsPath = ".config/omarchy/current/theme/colors.toml"

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagNoToggle     = "no-toggle"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescNoToggle = "Always start a new instance instead of toggling an existing one"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	WindowWidth  = 420
	WindowHeight = 520

	StripHeight = 8

	// SliderStepMinutes is the granularity of the time-travel slider.
	SliderStepMinutes = 15

	// Preference Keys
	PrefLanguage = "language"
	PrefLastRun  = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle   = "win_title"
	TKeyHeader     = "header_label"
	TKeySearchHint = "search_placeholder"
	TKeyTimeTravel = "time_travel_title"
	TKeyBtnNow     = "btn_now"
	TKeyLblDay     = "lbl_day"
	TKeyLblNight   = "lbl_night"
	TKeyLblNow     = "lbl_now"
	TKeyLblFromNow = "lbl_from_now"
	TKeyRowError   = "row_error"
	TKeyEmptyState = "empty_state"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"

	// MinQueryLength is the shortest search query that produces results.
	MinQueryLength = 2

	// MaxSearchResults caps the search dropdown size.
	MaxSearchResults = 20

	// Offset clamp bounds for the time-travel controller, in minutes (±24h).
	OffsetMinMinutes = -1440
	OffsetMaxMinutes = 1440

	// Day window approximation: local hour in [DayStartHour, DayEndHour)
	// counts as daytime. Not a solar calculation.
	DayStartHour = 6
	DayEndHour   = 18

	// GradientSegments is the sample count of the 24h daylight strip.
	GradientSegments = 48

	// UpdateInterval is the periodic redraw cadence of the popup.
	UpdateInterval = 30 * time.Second
)

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	TimeFormatHM   = "15:04"
	DateFormatRow  = "Mon, Jan 2"
	MinutesPerHour = 60
	MinutesPerDay  = 1440
)

// -----------------------------------------------------------------------------
// Labels (offset / zone presentation)
// -----------------------------------------------------------------------------

const (
	LabelLocal    = "Local"
	LabelUTC      = "UTC"
	SignPlus      = "+"
	SignMinus     = "-"
	LabelSepDot   = " · "
	FormatHours   = "%s%dh"
	FormatHoursMM = "%s%dh%02dm"
	FormatMins    = "%s%dm"
	FormatGMTHour = "GMT %s%d"
	FormatGMTFull = "GMT %s%d:%02d"
)

// -----------------------------------------------------------------------------
// Theme Defaults (tokyonight fallback palette)
// -----------------------------------------------------------------------------

const (
	DefaultBG     = "#1a1b26"
	DefaultFG     = "#a9b1d6"
	DefaultAccent = "#7aa2f7"
	DefaultCursor = "#c0caf5"
	DefaultRed    = "#ef4444"
	HexWhite      = "#ffffff"
	HexBlack      = "#000000"

	// LightThemeLuminance is the WCAG relative-luminance threshold above
	// which a background is treated as a light theme.
	LightThemeLuminance = 0.46
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrUnknownZone    = "timezone identifier cannot be resolved"
	ErrZoneSyntax     = "not a syntactically valid IANA timezone identifier"
	ErrSelectionRead  = "failed to read persisted city selection"
	ErrSelectionParse = "failed to parse persisted city selection"
	ErrSelectionWrite = "failed to write city selection"
	ErrConfigDir      = "could not determine user config dir"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app directory"
	ErrLogFile        = "failed to open log file"
	ErrAppFailed      = "application failed unexpectedly"
	ErrPidfileRead    = "failed to read pidfile"
	ErrPidfileWrite   = "failed to write pidfile"
	ErrTerminate      = "failed to terminate existing instance"
	ErrThemeRead      = "failed to read theme colors"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrLocNotInit     = "localizer not initialized"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting     = "Starting application"
	MsgAppStop         = "Application stopped gracefully"
	MsgCtxCancel       = "Context cancelled, shutting down UI"
	MsgToggledOff      = "Existing instance terminated, exiting"
	MsgStalePidfile    = "Removing stale pidfile"
	MsgSelectionLoad   = "City selection loaded"
	MsgSelectionSave   = "City selection saved"
	MsgDefaultsUsed    = "Falling back to default city selection"
	MsgCityAdded       = "City added"
	MsgCityRemoved     = "City removed"
	MsgOffsetChanged   = "Time-travel offset changed"
	MsgOffsetReset     = "Time-travel offset reset"
	MsgThemeLoaded     = "Theme palette loaded"
	MsgThemeFallback   = "Theme palette missing or unreadable, using defaults"
	MsgTickerStart     = "Refresh ticker started"
	MsgTickerStop      = "Refresh ticker stopping"
	MsgRowUnrenderable = "Selected city cannot be rendered"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleBadName   = "Skipping malformed locale filename"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyZone      = "timezone_id"
	LogKeyCity      = "city"
	LogKeyCount     = "count"
	LogKeyOffset    = "offset_min"
	LogKeyPID       = "pid"
	LogKeyPath      = "path"
	LogKeyQuery     = "query"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI        = "ui"
	CompSelection = "selection"
	CompEngine    = "engine"
	CompTheme     = "theme"
	CompSingleton = "singleton"
	CompMain      = "main"
	CompI18n      = "i18n"
)
