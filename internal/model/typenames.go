package model

import (
	"strconv"
	"strings"
)

// TypePrefix is the framework qualifier some dump flavors attach to the raw
// element-type value.
const TypePrefix = "XCUIElementType"

// TypeNames maps XCUIElementType raw values to human-readable names.
var TypeNames = map[int]string{
	0:  "Any",
	1:  "Other",
	2:  "Application",
	3:  "Group",
	4:  "Window",
	5:  "Sheet",
	6:  "Drawer",
	7:  "Alert",
	8:  "Dialog",
	9:  "Button",
	10: "RadioButton",
	11: "RadioGroup",
	12: "CheckBox",
	13: "DisclosureTriangle",
	14: "PopUpButton",
	15: "ComboBox",
	16: "MenuButton",
	17: "ToolbarButton",
	18: "Popover",
	19: "Keyboard",
	20: "Key",
	21: "NavigationBar",
	22: "TabBar",
	23: "TabGroup",
	24: "Toolbar",
	25: "StatusBar",
	26: "Table",
	27: "TableRow",
	28: "TableColumn",
	29: "Outline",
	30: "OutlineRow",
	31: "Browser",
	32: "CollectionView",
	33: "Slider",
	34: "PageIndicator",
	35: "ProgressIndicator",
	36: "ActivityIndicator",
	37: "SegmentedControl",
	38: "Picker",
	39: "PickerWheel",
	40: "Switch",
	41: "Toggle",
	42: "Link",
	43: "Image",
	44: "Icon",
	45: "SearchField",
	46: "ScrollView",
	47: "ScrollBar",
	48: "StaticText",
	49: "TextField",
	50: "SecureTextField",
	51: "DatePicker",
	52: "TextView",
	53: "Menu",
	54: "MenuItem",
	55: "MenuBar",
	56: "MenuBarItem",
	57: "Map",
	58: "WebView",
	59: "IncrementArrow",
	60: "DecrementArrow",
	61: "Timeline",
	62: "RatingIndicator",
	63: "ValueIndicator",
	64: "SplitGroup",
	65: "Splitter",
	66: "RelevanceIndicator",
	67: "ColorWell",
	68: "HelpTag",
	69: "Matte",
	70: "DockItem",
	71: "Ruler",
	72: "RulerMarker",
	73: "Grid",
	74: "LevelIndicator",
	75: "Cell",
	76: "LayoutArea",
	77: "LayoutItem",
	78: "Handle",
	79: "Stepper",
	80: "Tab",
	81: "TouchBar",
	82: "StatusItem",
}

// ResolveTypeName converts an element-type token to a human-readable name.
// Tokens carrying the framework prefix are stripped before the numeric
// lookup. Unknown codes and plain textual tokens are returned unchanged.
func ResolveTypeName(token string) string {
	t := strings.TrimPrefix(token, TypePrefix)
	if code, err := strconv.Atoi(t); err == nil {
		if name, ok := TypeNames[code]; ok {
			return name
		}
	}
	return token
}
