package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyDockToCorner    = "dock_to_corner"
	KeyShowMeter       = "show_meter"
	KeyHideMeter       = "hide_meter"
	KeyPinMeter        = "pin_meter"
	KeyUnpinMeter      = "unpin_meter"
	KeyToggleUnits     = "toggle_units"
	KeyStartAtLogin    = "start_at_login"
	KeyQuit            = "quit"
	KeyPinnedTooltip   = "pinned_tooltip"
	KeyUnpinnedTooltip = "unpinned_tooltip"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetLanguage returns the current language
func (l *Localization) GetLanguage() string {
	return l.currentLanguage
}

// GetText returns the localized text for a key, falling back to English and
// then to the key itself.
func (l *Localization) GetText(key string) string {
	if text, ok := l.texts[l.currentLanguage][key]; ok {
		return text
	}
	if text, ok := l.texts["en"][key]; ok {
		return text
	}
	return key
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Ultra Meter",
		KeyDockToCorner:    "Dock to corner",
		KeyShowMeter:       "Show Meter",
		KeyHideMeter:       "Hide Meter",
		KeyPinMeter:        "Pin (lock in place)",
		KeyUnpinMeter:      "Unpin (make draggable)",
		KeyToggleUnits:     "Units: bits / bytes",
		KeyStartAtLogin:    "Start at login",
		KeyQuit:            "Quit",
		KeyPinnedTooltip:   "Pinned (click to unpin and drag)",
		KeyUnpinnedTooltip: "Unpinned (drag me, then click to pin)",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Ultra Meter",
		KeyDockToCorner:    "Прижать к углу",
		KeyShowMeter:       "Показать индикатор",
		KeyHideMeter:       "Скрыть индикатор",
		KeyPinMeter:        "Закрепить",
		KeyUnpinMeter:      "Открепить (можно перетаскивать)",
		KeyToggleUnits:     "Единицы: биты / байты",
		KeyStartAtLogin:    "Запускать при входе",
		KeyQuit:            "Выход",
		KeyPinnedTooltip:   "Закреплено (нажмите, чтобы открепить)",
		KeyUnpinnedTooltip: "Откреплено (перетащите и нажмите, чтобы закрепить)",
	}
}
