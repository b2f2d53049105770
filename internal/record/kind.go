package record

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind identifies a record family of the DSM command file. The declaration
// order is the order in which collections are emitted.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindGains           // Gains
	KindLimits          // Limits
	KindActuator        // Actuator
	KindController      // Controller
	KindSensor          // Sensor
	KindSensorSet       // Sensor Set
	KindNavData         // Navigation Data
	KindTranslation     // Translation
	KindPrimaryVector   // Primary Vector
	KindSecondaryVector // Secondary Vector
	KindTwoVector       // Two Vector
	KindQuaternion      // Quaternion
	KindMirror          // Mirror
	KindDetumble        // Detumble
	KindWhlHManage      // Whl H Manage
	KindActuatorCmd     // Actuator Cmd
	KindManeuver        // Maneuver
	KindNavigation      // Navigation

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// CommandsKey is the top-level key holding the per-target command sequences.
const CommandsKey = "DSM Commands"

var kindPrefixes = map[Kind]string{
	KindGains:           "Gains_",
	KindLimits:          "Limits_",
	KindActuator:        "Actuators_",
	KindController:      "Controller_",
	KindSensor:          "Sensor_",
	KindSensorSet:       "SensorSet_",
	KindNavData:         "Dat_",
	KindTranslation:     "TranslationCmd_",
	KindPrimaryVector:   "AttitudeCmd_PV",
	KindSecondaryVector: "AttitudeCmd_SV",
	KindQuaternion:      "QuaternionCmd_",
	KindMirror:          "MirrorCmd_",
	KindDetumble:        "DetumbleCmd_",
	KindWhlHManage:      "WhlHManageCmd_",
	KindActuatorCmd:     "ActuatorCmd_",
	KindManeuver:        "ManeuverCmd_",
	KindNavigation:      "NavigationCmd_",
}

var anchorStems = map[Kind]string{
	KindGains:           "Gains",
	KindLimits:          "Limits",
	KindActuator:        "Actuator",
	KindController:      "Controller",
	KindSensor:          "Sensor",
	KindSensorSet:       "SensorSet",
	KindNavData:         "NavData",
	KindTranslation:     "Translation",
	KindPrimaryVector:   "PrimaryVector",
	KindSecondaryVector: "SecondaryVector",
	KindTwoVector:       "TwoVector",
	KindQuaternion:      "Quaternion",
	KindMirror:          "Mirror",
	KindDetumble:        "Detumble",
	KindWhlHManage:      "WhlHManage",
	KindActuatorCmd:     "ActuatorCmd",
	KindManeuver:        "Maneuver",
	KindNavigation:      "Navigation",
}

// Kinds returns every valid kind in emission order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, KindTotal-1)
	for k := KindGains; int(k) < KindTotal; k++ {
		kinds = append(kinds, k)
	}

	return kinds
}

func (k Kind) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// IsComposite reports whether records of this kind are synthesized rather
// than parsed from a line.
func (k Kind) IsComposite() bool {
	return k == KindTwoVector
}

// IsCommand reports whether records of this kind are the payload of a
// sub-command rather than shared configuration.
func (k Kind) IsCommand() bool {
	switch k {
	default:
		return false
	case KindTranslation, KindPrimaryVector, KindSecondaryVector, KindTwoVector,
		KindQuaternion, KindMirror, KindDetumble, KindWhlHManage,
		KindActuatorCmd, KindManeuver, KindNavigation:
		return true
	}
}

// Prefix returns the line tag that introduces a record of this kind, or ""
// for composite kinds.
func (k Kind) Prefix() string {
	return kindPrefixes[k]
}

// AnchorStem returns the identifier-safe stem used for anchor names.
func (k Kind) AnchorStem() string {
	return anchorStems[k]
}

// CollectionKey returns the top-level document key of the kind's collection.
func (k Kind) CollectionKey() string {
	return k.String() + " Configurations"
}

// TopLevelKeys returns every top-level key of a converted document in order.
func TopLevelKeys() []string {
	keys := make([]string, 0, KindTotal)
	for _, k := range Kinds() {
		keys = append(keys, k.CollectionKey())
	}

	return append(keys, CommandsKey)
}
