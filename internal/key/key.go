package key

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Key identifies a physical key by its Karabiner-Elements key_code.
// The set is closed: every value between KeyNone and keyCount is a key.
type Key uint16

const (
	// KeyNone represents no key. It has no token and never parses.
	KeyNone Key = iota

	// Modifier keys
	KeyLeftControl
	KeyLeftShift
	KeyLeftOption
	KeyLeftCommand
	KeyRightControl
	KeyRightShift
	KeyRightOption
	KeyRightCommand
	KeyFn
	KeyCapsLock
	KeyHyper

	// Control and symbol keys
	KeyReturnOrEnter
	KeyEscape
	KeyDeleteOrBackspace
	KeyDeleteForward
	KeyTab
	KeySpacebar
	KeyHyphen
	KeyEqualSign
	KeyOpenBracket
	KeyCloseBracket
	KeyBackslash
	KeyNonUsPound
	KeySemicolon
	KeyQuote
	KeyGraveAccentAndTilde
	KeyComma
	KeyPeriod
	KeySlash
	KeyNonUsBackslash

	// Arrow and navigation keys
	KeyUpArrow
	KeyDownArrow
	KeyLeftArrow
	KeyRightArrow
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd

	// Letter keys
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Number keys
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	// Keypad keys
	KeyKeypadNumLock
	KeyKeypadSlash
	KeyKeypadAsterisk
	KeyKeypadHyphen
	KeyKeypadPlus
	KeyKeypadEnter
	KeyKeypad1
	KeyKeypad2
	KeyKeypad3
	KeyKeypad4
	KeyKeypad5
	KeyKeypad6
	KeyKeypad7
	KeyKeypad8
	KeyKeypad9
	KeyKeypad0
	KeyKeypadPeriod
	KeyKeypadEqualSign
	KeyKeypadComma
	KeyKeypadEqualSignAS400

	// PC keyboard keys
	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyInsert
	KeyApplication
	KeyHelp
	KeyPower
	KeyExecute
	KeyMenu
	KeySelect
	KeyStop
	KeyAgain
	KeyUndo
	KeyCut
	KeyCopy
	KeyPaste
	KeyFind

	// International keys
	KeyInternational1
	KeyInternational2
	KeyInternational3
	KeyInternational4
	KeyInternational5
	KeyInternational6
	KeyInternational7
	KeyInternational8
	KeyInternational9
	KeyLang1
	KeyLang2
	KeyLang3
	KeyLang4
	KeyLang5
	KeyLang6
	KeyLang7
	KeyLang8
	KeyLang9

	// Japanese keys
	KeyJapaneseEisuu
	KeyJapaneseKana
	KeyJapanesePCNfer
	KeyJapanesePCXfer
	KeyJapanesePCKatakana

	// Media keys
	KeyVolumeDown
	KeyVolumeUp
	KeyMute
	KeyVolumeDecrement
	KeyVolumeIncrement
	KeyDisplayBrightnessDecrement
	KeyDisplayBrightnessIncrement
	KeyRewind
	KeyPlayOrPause
	KeyFastforward
	KeyAppleDisplayBrightnessDecrement
	KeyAppleDisplayBrightnessIncrement
	KeyAppleTopCaseDisplayBrightnessDecrement
	KeyAppleTopCaseDisplayBrightnessIncrement
	KeyIlluminationDecrement
	KeyIlluminationIncrement

	// Legacy keys accepted only as input
	KeyLockingCapsLock
	KeyLockingNumLock
	KeyLockingScrollLock
	KeyAlternateErase
	KeySysReqOrAttention
	KeyCancel
	KeyClear
	KeyPrior
	KeyReturn
	KeySeparator
	KeyOut
	KeyOper
	KeyClearOrAgain
	KeyCrSelOrProps
	KeyExSel

	// Virtual keys accepted only as output
	KeyVKNone
	KeyVKConsumerBrightnessDown
	KeyVKConsumerBrightnessUp
	KeyVKMissionControl
	KeyVKLaunchpad
	KeyVKDashboard
	KeyVKConsumerIlluminationDown
	KeyVKConsumerIlluminationUp
	KeyVKConsumerPrevious
	KeyVKConsumerPlay
	KeyVKConsumerNext

	keyCount
)

// ErrInvalidKey is returned when a token does not name a key.
var ErrInvalidKey = errors.New("invalid key")

// String returns the canonical key_code token for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyLeftControl:
		return "left_control"
	case KeyLeftShift:
		return "left_shift"
	case KeyLeftOption:
		return "left_option"
	case KeyLeftCommand:
		return "left_command"
	case KeyRightControl:
		return "right_control"
	case KeyRightShift:
		return "right_shift"
	case KeyRightOption:
		return "right_option"
	case KeyRightCommand:
		return "right_command"
	case KeyFn:
		return "fn"
	case KeyCapsLock:
		return "caps_lock"
	case KeyHyper:
		return "hyper"
	case KeyReturnOrEnter:
		return "return_or_enter"
	case KeyEscape:
		return "escape"
	case KeyDeleteOrBackspace:
		return "delete_or_backspace"
	case KeyDeleteForward:
		return "delete_forward"
	case KeyTab:
		return "tab"
	case KeySpacebar:
		return "spacebar"
	case KeyHyphen:
		return "hyphen"
	case KeyEqualSign:
		return "equal_sign"
	case KeyOpenBracket:
		return "open_bracket"
	case KeyCloseBracket:
		return "close_bracket"
	case KeyBackslash:
		return "backslash"
	case KeyNonUsPound:
		return "non_us_pound"
	case KeySemicolon:
		return "semicolon"
	case KeyQuote:
		return "quote"
	case KeyGraveAccentAndTilde:
		return "grave_accent_and_tilde"
	case KeyComma:
		return "comma"
	case KeyPeriod:
		return "period"
	case KeySlash:
		return "slash"
	case KeyNonUsBackslash:
		return "non_us_backslash"
	case KeyUpArrow:
		return "up_arrow"
	case KeyDownArrow:
		return "down_arrow"
	case KeyLeftArrow:
		return "left_arrow"
	case KeyRightArrow:
		return "right_arrow"
	case KeyPageUp:
		return "page_up"
	case KeyPageDown:
		return "page_down"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyA:
		return "a"
	case KeyB:
		return "b"
	case KeyC:
		return "c"
	case KeyD:
		return "d"
	case KeyE:
		return "e"
	case KeyF:
		return "f"
	case KeyG:
		return "g"
	case KeyH:
		return "h"
	case KeyI:
		return "i"
	case KeyJ:
		return "j"
	case KeyK:
		return "k"
	case KeyL:
		return "l"
	case KeyM:
		return "m"
	case KeyN:
		return "n"
	case KeyO:
		return "o"
	case KeyP:
		return "p"
	case KeyQ:
		return "q"
	case KeyR:
		return "r"
	case KeyS:
		return "s"
	case KeyT:
		return "t"
	case KeyU:
		return "u"
	case KeyV:
		return "v"
	case KeyW:
		return "w"
	case KeyX:
		return "x"
	case KeyY:
		return "y"
	case KeyZ:
		return "z"
	case Key1:
		return "1"
	case Key2:
		return "2"
	case Key3:
		return "3"
	case Key4:
		return "4"
	case Key5:
		return "5"
	case Key6:
		return "6"
	case Key7:
		return "7"
	case Key8:
		return "8"
	case Key9:
		return "9"
	case Key0:
		return "0"
	case KeyF1:
		return "f1"
	case KeyF2:
		return "f2"
	case KeyF3:
		return "f3"
	case KeyF4:
		return "f4"
	case KeyF5:
		return "f5"
	case KeyF6:
		return "f6"
	case KeyF7:
		return "f7"
	case KeyF8:
		return "f8"
	case KeyF9:
		return "f9"
	case KeyF10:
		return "f10"
	case KeyF11:
		return "f11"
	case KeyF12:
		return "f12"
	case KeyF13:
		return "f13"
	case KeyF14:
		return "f14"
	case KeyF15:
		return "f15"
	case KeyF16:
		return "f16"
	case KeyF17:
		return "f17"
	case KeyF18:
		return "f18"
	case KeyF19:
		return "f19"
	case KeyF20:
		return "f20"
	case KeyF21:
		return "f21"
	case KeyF22:
		return "f22"
	case KeyF23:
		return "f23"
	case KeyF24:
		return "f24"
	case KeyKeypadNumLock:
		return "keypad_num_lock"
	case KeyKeypadSlash:
		return "keypad_slash"
	case KeyKeypadAsterisk:
		return "keypad_asterisk"
	case KeyKeypadHyphen:
		return "keypad_hyphen"
	case KeyKeypadPlus:
		return "keypad_plus"
	case KeyKeypadEnter:
		return "keypad_enter"
	case KeyKeypad1:
		return "keypad_1"
	case KeyKeypad2:
		return "keypad_2"
	case KeyKeypad3:
		return "keypad_3"
	case KeyKeypad4:
		return "keypad_4"
	case KeyKeypad5:
		return "keypad_5"
	case KeyKeypad6:
		return "keypad_6"
	case KeyKeypad7:
		return "keypad_7"
	case KeyKeypad8:
		return "keypad_8"
	case KeyKeypad9:
		return "keypad_9"
	case KeyKeypad0:
		return "keypad_0"
	case KeyKeypadPeriod:
		return "keypad_period"
	case KeyKeypadEqualSign:
		return "keypad_equal_sign"
	case KeyKeypadComma:
		return "keypad_comma"
	case KeyKeypadEqualSignAS400:
		return "keypad_equal_sign_as400"
	case KeyPrintScreen:
		return "print_screen"
	case KeyScrollLock:
		return "scroll_lock"
	case KeyPause:
		return "pause"
	case KeyInsert:
		return "insert"
	case KeyApplication:
		return "application"
	case KeyHelp:
		return "help"
	case KeyPower:
		return "power"
	case KeyExecute:
		return "execute"
	case KeyMenu:
		return "menu"
	case KeySelect:
		return "select"
	case KeyStop:
		return "stop"
	case KeyAgain:
		return "again"
	case KeyUndo:
		return "undo"
	case KeyCut:
		return "cut"
	case KeyCopy:
		return "copy"
	case KeyPaste:
		return "paste"
	case KeyFind:
		return "find"
	case KeyInternational1:
		return "international1"
	case KeyInternational2:
		return "international2"
	case KeyInternational3:
		return "international3"
	case KeyInternational4:
		return "international4"
	case KeyInternational5:
		return "international5"
	case KeyInternational6:
		return "international6"
	case KeyInternational7:
		return "international7"
	case KeyInternational8:
		return "international8"
	case KeyInternational9:
		return "international9"
	case KeyLang1:
		return "lang1"
	case KeyLang2:
		return "lang2"
	case KeyLang3:
		return "lang3"
	case KeyLang4:
		return "lang4"
	case KeyLang5:
		return "lang5"
	case KeyLang6:
		return "lang6"
	case KeyLang7:
		return "lang7"
	case KeyLang8:
		return "lang8"
	case KeyLang9:
		return "lang9"
	case KeyJapaneseEisuu:
		return "japanese_eisuu"
	case KeyJapaneseKana:
		return "japanese_kana"
	case KeyJapanesePCNfer:
		return "japanese_pc_nfer"
	case KeyJapanesePCXfer:
		return "japanese_pc_xfer"
	case KeyJapanesePCKatakana:
		return "japanese_pc_katakana"
	case KeyVolumeDown:
		return "volume_down"
	case KeyVolumeUp:
		return "volume_up"
	case KeyMute:
		return "mute"
	case KeyVolumeDecrement:
		return "volume_decrement"
	case KeyVolumeIncrement:
		return "volume_increment"
	case KeyDisplayBrightnessDecrement:
		return "display_brightness_decrement"
	case KeyDisplayBrightnessIncrement:
		return "display_brightness_increment"
	case KeyRewind:
		return "rewind"
	case KeyPlayOrPause:
		return "play_or_pause"
	case KeyFastforward:
		return "fastforward"
	case KeyAppleDisplayBrightnessDecrement:
		return "apple_display_brightness_decrement"
	case KeyAppleDisplayBrightnessIncrement:
		return "apple_display_brightness_increment"
	case KeyAppleTopCaseDisplayBrightnessDecrement:
		return "apple_top_case_display_brightness_decrement"
	case KeyAppleTopCaseDisplayBrightnessIncrement:
		return "apple_top_case_display_brightness_increment"
	case KeyIlluminationDecrement:
		return "illumination_decrement"
	case KeyIlluminationIncrement:
		return "illumination_increment"
	case KeyLockingCapsLock:
		return "locking_caps_lock"
	case KeyLockingNumLock:
		return "locking_num_lock"
	case KeyLockingScrollLock:
		return "locking_scroll_lock"
	case KeyAlternateErase:
		return "alternate_erase"
	case KeySysReqOrAttention:
		return "sys_req_or_attention"
	case KeyCancel:
		return "cancel"
	case KeyClear:
		return "clear"
	case KeyPrior:
		return "prior"
	case KeyReturn:
		return "return"
	case KeySeparator:
		return "separator"
	case KeyOut:
		return "out"
	case KeyOper:
		return "oper"
	case KeyClearOrAgain:
		return "clear_or_again"
	case KeyCrSelOrProps:
		return "cr_sel_or_props"
	case KeyExSel:
		return "ex_sel"
	case KeyVKNone:
		return "vk_none"
	case KeyVKConsumerBrightnessDown:
		return "vk_consumer_brightness_down"
	case KeyVKConsumerBrightnessUp:
		return "vk_consumer_brightness_up"
	case KeyVKMissionControl:
		return "vk_mission_control"
	case KeyVKLaunchpad:
		return "vk_launchpad"
	case KeyVKDashboard:
		return "vk_dashboard"
	case KeyVKConsumerIlluminationDown:
		return "vk_consumer_illumination_down"
	case KeyVKConsumerIlluminationUp:
		return "vk_consumer_illumination_up"
	case KeyVKConsumerPrevious:
		return "vk_consumer_previous"
	case KeyVKConsumerPlay:
		return "vk_consumer_play"
	case KeyVKConsumerNext:
		return "vk_consumer_next"
	default:
		return fmt.Sprintf("Key(%d)", k)
	}
}

// IsValid reports whether k is a member of the catalog.
func (k Key) IsValid() bool {
	return k > KeyNone && k < keyCount
}

// Category names the group of the keyboard k belongs to: "modifier",
// "letter", "digit", "function", "arrow", "keypad" or "other".
func (k Key) Category() string {
	switch {
	case k >= KeyLeftControl && k <= KeyHyper:
		return "modifier"
	case k >= KeyA && k <= KeyZ:
		return "letter"
	case k >= Key1 && k <= Key0:
		return "digit"
	case k >= KeyF1 && k <= KeyF24:
		return "function"
	case k >= KeyUpArrow && k <= KeyRightArrow:
		return "arrow"
	case k >= KeyKeypadNumLock && k <= KeyKeypadEqualSignAS400:
		return "keypad"
	default:
		return "other"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, errors.Wrapf(ErrInvalidKey, "cannot marshal %s", k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// tokens maps canonical tokens back to keys. It is derived from String so
// the two directions cannot drift apart.
var tokens = func() map[string]Key {
	m := make(map[string]Key, int(keyCount)-1)
	for k := KeyNone + 1; k < keyCount; k++ {
		m[k.String()] = k
	}
	return m
}()

// Parse returns the key named by token. Tokens are matched exactly after
// trimming surrounding whitespace.
func Parse(token string) (Key, error) {
	token = strings.TrimSpace(token)
	if k, ok := tokens[token]; ok {
		return k, nil
	}
	return KeyNone, errors.WithHint(
		errors.Wrapf(ErrInvalidKey, "%q", token),
		"key names are Karabiner-Elements key codes such as caps_lock, left_command or f13",
	)
}

// All returns every key in catalog order.
func All() []Key {
	keys := make([]Key, 0, int(keyCount)-1)
	for k := KeyNone + 1; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}
