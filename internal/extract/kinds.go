package extract

import (
	"strings"

	"txt2yaml/internal/record"
)

// rule is the grammar of one kind: the accepted argument count and the
// function that maps argument positions to named fields.
type rule struct {
	lo, hi int
	fill   func(r *reader, rec *record.Record)
}

var rules = map[record.Kind]rule{
	record.KindGains:           {lo: 1, hi: -1, fill: fillGains},
	record.KindLimits:          {lo: 6, hi: 6, fill: fillLimits},
	record.KindActuator:        {lo: 1, hi: 1, fill: fillActuator},
	record.KindController:      {lo: 3, hi: 3, fill: fillController},
	record.KindSensor:          {lo: 2, hi: 2, fill: fillSensor},
	record.KindSensorSet:       {lo: 1, hi: -1, fill: fillSensorSet},
	record.KindNavData:         {lo: 1, hi: -1, fill: fillNavData},
	record.KindTranslation:     {lo: 7, hi: 7, fill: fillTranslation},
	record.KindPrimaryVector:   {lo: 7, hi: 10, fill: fillPrimaryVector},
	record.KindSecondaryVector: {lo: 5, hi: 8, fill: fillSecondaryVector},
	record.KindQuaternion:      {lo: 7, hi: 7, fill: fillQuaternion},
	record.KindMirror:          {lo: 3, hi: 3, fill: fillMirror},
	record.KindDetumble:        {lo: 2, hi: 2, fill: fillDetumble},
	record.KindWhlHManage:      {lo: 5, hi: 5, fill: fillWhlHManage},
	record.KindActuatorCmd:     {lo: 1, hi: -1, fill: fillActuatorCmd},
	record.KindManeuver:        {lo: 8, hi: 8, fill: fillManeuver},
	record.KindNavigation:      {lo: 5, hi: 5, fill: fillNavigation},
}

// pidTerms maps PID gain labels to their field names.
var pidTerms = map[string]string{
	"kp":       "Kp",
	"kr":       "Kr",
	"ki":       "Ki",
	"ki_limit": "Ki_Limit",
}

func fillGains(r *reader, rec *record.Record) {
	gainType := r.str(0)
	gains := record.NewMap()

	switch strings.ToLower(gainType) {
	case "pid":
		if !r.arity(17, 17) {
			return
		}

		for i := 1; i < 17; i += 4 {
			label := r.str(i)

			name, ok := pidTerms[strings.ToLower(label)]
			if !ok {
				r.fail(label, "expected one of Kp, Kr, Ki, Ki_Limit")

				return
			}

			gains.Set(name, r.floats(i+1, 3))
		}
	case "pid_wn":
		if !r.arity(5, 5) {
			return
		}

		gains.Set("Omega", r.float(1))
		gains.Set("Zeta", r.float(2))
		gains.Set("Alpha", r.float(3))
		gains.Set("Ki_Limit", r.float(4))
	case "momentumdump":
		if !r.arity(4, 4) {
			return
		}

		gains.Set("Kp", r.floats(1, 3))
	case "fc_lya":
		if !r.arity(2, -1) {
			return
		}

		gains.Set("K_lya", r.rest(1))
	case "custom":
		if !r.arity(2, -1) {
			return
		}

		gains.Set("K", r.rest(1))
	default:
		r.fail(gainType, "unknown gains type (PID, PID_WN, MomentumDump, FC_LYA, Custom)")

		return
	}

	rec.Set("Type", gainType)
	rec.Set("Gains", gains)
}

func fillLimits(r *reader, rec *record.Record) {
	rec.Set("Force Max", r.floats(0, 3))
	rec.Set("Velocity Max", r.floats(3, 3))
}

func fillActuator(r *reader, rec *record.Record) {
	rec.Set("Type", r.str(0))
}

func fillController(r *reader, rec *record.Record) {
	rec.Set("Type", r.str(0))
	rec.Set("Gains", r.ref(1, record.KindGains))
	rec.Set("Limits", r.ref(2, record.KindLimits))
}

func fillSensor(r *reader, rec *record.Record) {
	rec.Set("Type", r.str(0))
	rec.Set("Hardware Index", r.integer(1))
}

func fillSensorSet(r *reader, rec *record.Record) {
	rec.Set("Sensors", r.refs(0, record.KindSensor))
}

func fillNavData(r *reader, rec *record.Record) {
	states := make([]string, 0, len(r.args))
	for i := range r.args {
		states = append(states, r.str(i))
	}

	rec.Set("States", states)
}

func fillTranslation(r *reader, rec *record.Record) {
	rec.Set("Position", r.floats(0, 3))
	rec.Set("Origin", r.str(3))
	rec.Set("Frame", r.str(4))
	rec.Set("Controller", r.ref(5, record.KindController))
	rec.Set("Actuator", r.ref(6, record.KindActuator))
}

// fillPointing reads the target and body axis shared by primary and
// secondary vectors and returns the position after them.
//
//	<type> <ax> <ay> <az> VEC-only: <frame> <tx> <ty> <tz> | other: <target>
func fillPointing(r *reader, rec *record.Record, withCommand bool) int {
	targetType := r.str(0)
	target := record.NewMap()
	target.Set("Type", targetType)

	isVec := strings.EqualFold(targetType, "vec")

	want := 5
	if isVec {
		want = 8
	}

	if withCommand {
		want += 2
	}

	if !r.arity(want, want) {
		return 0
	}

	rec.Set("Target", target)
	rec.Set("Axis", r.floats(1, 3))

	if isVec {
		target.Set("Frame", r.str(4))
		target.Set("Axis", r.floats(5, 3))

		return 8
	}

	target.Set("Target", r.str(4))

	return 5
}

func fillPrimaryVector(r *reader, rec *record.Record) {
	next := fillPointing(r, rec, true)
	if r.err != nil {
		return
	}

	rec.Set("Controller", r.ref(next, record.KindController))
	rec.Set("Actuator", r.ref(next+1, record.KindActuator))
}

func fillSecondaryVector(r *reader, rec *record.Record) {
	fillPointing(r, rec, false)
}

func fillQuaternion(r *reader, rec *record.Record) {
	rec.Set("Quaternion", r.floats(0, 4))
	rec.Set("Frame", r.str(4))
	rec.Set("Controller", r.ref(5, record.KindController))
	rec.Set("Actuator", r.ref(6, record.KindActuator))
}

func fillMirror(r *reader, rec *record.Record) {
	rec.Set("Target", r.str(0))
	rec.Set("Controller", r.ref(1, record.KindController))
	rec.Set("Actuator", r.ref(2, record.KindActuator))
}

func fillDetumble(r *reader, rec *record.Record) {
	rec.Set("Controller", r.ref(0, record.KindController))
	rec.Set("Actuator", r.ref(1, record.KindActuator))
}

func fillWhlHManage(r *reader, rec *record.Record) {
	rec.Set("Dumping", r.flag(0, "on", "off"))
	rec.Set("Minimum H_norm", r.float(1))
	rec.Set("Maximum H_norm", r.float(2))
	rec.Set("Controller", r.ref(3, record.KindController))
	rec.Set("Actuator", r.ref(4, record.KindActuator))
}

// fillActuatorCmd reads "<count> TYPE_[i]_[duty]..." where count must match
// the number of entries.
func fillActuatorCmd(r *reader, rec *record.Record) {
	count := r.integer(0)
	if r.err != nil {
		return
	}

	if count < 0 {
		r.fail(r.str(0), "actuator count must not be negative")

		return
	}

	if !r.arity(count+1, count+1) {
		return
	}

	entries := make([]any, 0, count)
	for i := 1; i <= count; i++ {
		entries = append(entries, r.duty(i))
	}

	rec.Set("Actuators", entries)
}

func fillManeuver(r *reader, rec *record.Record) {
	rec.Set("Delta V", r.floats(0, 3))
	rec.Set("Frame", r.str(3))
	rec.Set("Type", r.str(4))
	rec.Set("Duration", r.float(5))
	rec.Set("Limits", r.ref(6, record.KindLimits))
	rec.Set("Actuator", r.ref(7, record.KindActuator))
}

func fillNavigation(r *reader, rec *record.Record) {
	rec.Set("Type", r.str(0))
	rec.Set("Frame", r.str(1))
	rec.Set("Origin", r.str(2))
	rec.Set("Navigation Data", r.ref(3, record.KindNavData))
	rec.Set("Sensor Set", r.ref(4, record.KindSensorSet))
}
