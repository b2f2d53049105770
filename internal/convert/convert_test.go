package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"txt2yaml/internal/config"
	"txt2yaml/internal/diagnostic"
	"txt2yaml/internal/record"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const sharedController = `<DSM configuration>
Gains_1 PID_WN 0.5 0.7 1.0 0.1 # slow loop
Limits_1 1 1 1 0.5 0.5 0.5
Actuators_1 WHL
Controller_1 PID Gains_1 Limits_1 # attitude controller
MirrorCmd_0 EARTH Controller_1 Actuators_1
DetumbleCmd_0 Controller_1 Actuators_1

DSM_Cmd SC[0] @ 0.0 : DetumbleCmd_0
DSM_Cmd SC[0] @ 10.0 : MirrorCmd_0
EOF
DSM_Cmd SC[9] @ 99 : Ignored_0
`

const twoVector = `
Gains_0 PID Kp 1 1 1 Kr 1 1 1 Ki 0 0 0 Ki_Limit 0 0 0
Limits_0 1 1 1 1 1 1
Actuators_0 WHL
Controller_0 PID Gains_0 Limits_0
AttitudeCmd_PV2 VEC 1 0 0 H 0 0 1 Controller_0 Actuators_0 # nadir
AttitudeCmd_SV3 BODY 0 1 0 SUN # sun
DSM_Cmd SC[0] @ 0 : AttitudeCmd_PV2_SV3
DSM_Cmd SC[1] @ 5 : Passive_Trn AttitudeCmd_PV2_SV3
`

func convert(t *testing.T, input string) *Result {
	t.Helper()

	res, err := New(nil, nil).Convert(strings.NewReader(input), "test")
	require.NoError(t, err)

	return res
}

func TestSharedControllerScenario(t *testing.T) {
	res := convert(t, sharedController)
	s := string(res.YAML)

	assert.Equal(t, 1, strings.Count(s, "&Gains_1"))
	assert.Equal(t, 1, strings.Count(s, "*Gains_1"))
	assert.Equal(t, 1, strings.Count(s, "&Controller_1"))
	assert.Equal(t, 2, strings.Count(s, "*Controller_1"))
	assert.Equal(t, 1, strings.Count(s, "&Actuator_1"))
	assert.Equal(t, 2, strings.Count(s, "*Actuator_1"))
	assert.Equal(t, 1, strings.Count(s, "&Limits_1"))

	assert.NotContains(t, s, "Index:")
	assert.NotContains(t, s, "Ignored_0")
	assert.Contains(t, s, "Description: attitude controller")
	assert.Contains(t, s, "Force Max: [1.0, 1.0, 1.0]")

	assert.Equal(t, 6, res.Records)
	assert.Empty(t, res.Diagnostics.Warnings)
}

func TestTwoVectorScenario(t *testing.T) {
	res := convert(t, twoVector)
	s := string(res.YAML)

	assert.Equal(t, 1, res.Composites)
	assert.Equal(t, 1, res.Document.Collections.Of(record.KindTwoVector).Len())
	assert.Equal(t, 1, strings.Count(s, "&TwoVector_2_3"))
	assert.Equal(t, 2, strings.Count(s, "*TwoVector_2_3"))

	first := res.Document.Sequences[0].Events[0].Commands[0].Data
	second := res.Document.Sequences[1].Events[0].Commands[1].Data
	assert.Same(t, first, second)
}

func TestSensorSetScenario(t *testing.T) {
	input := `
Sensor_0 GYRO 0
Sensor_1 STARTRACKER 0
Sensor_2 FSS 1
SensorSet_0 Sensor_0 Sensor_1
SensorSet_1 Sensor_1 Sensor_2
Dat_0 Time Quat PosN VelN
NavigationCmd_0 RIEKF N OP Dat_0 SensorSet_0
NavigationCmd_1 LIEKF N OP Dat_0 SensorSet_1
DSM_Cmd SC[0] @ 0 : NavigationCmd_0
DSM_Cmd SC[0] @ 5 : NavigationCmd_1
`
	res := convert(t, input)
	s := string(res.YAML)

	assert.Equal(t, 1, strings.Count(s, "&Sensor_1"))
	assert.Equal(t, 2, strings.Count(s, "*Sensor_1"))
	assert.Equal(t, 1, strings.Count(s, "&NavData_0"))
	assert.Equal(t, 2, strings.Count(s, "*NavData_0"))
	assert.Equal(t, 1, strings.Count(s, "*SensorSet_0"))
	assert.Equal(t, 3, strings.Count(s, "Hardware Index:"))
	assert.Empty(t, res.Diagnostics.Warnings)
}

func TestDanglingReferenceScenario(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "Inp_DSM.txt")
	out := OutputPath(in, ".yaml")

	input := `
Actuators_0 WHL
Actuators_1 WHL
Actuators_2 WHL
Actuators_3 WHL
Gains_0 MomentumDump 1 1 1
Limits_0 1 1 1 1 1 1
Controller_0 PID Gains_0 Limits_0
DetumbleCmd_0 Controller_0 Actuator_7
DSM_Cmd SC[0] @ 0 : DetumbleCmd_0
`
	require.NoError(t, os.WriteFile(in, []byte(input), 0o644))

	_, err := New(nil, nil).ConvertFile(in, out)
	require.Error(t, err)
	require.ErrorIs(t, err, diagnostic.ErrDanglingReference)

	errs := diagnostic.AsError(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "Actuator_7", errs[0].Token)
	assert.Equal(t, 9, errs[0].Line)

	assert.NoFileExists(t, out)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestParseCollectsFieldShapeErrors(t *testing.T) {
	input := `
Limits_0 1 1 1 0.5 0.5
Actuators_0 WHL
Sensor_0 GYRO two
DSM_Cmd SC[0] @ later : DetumbleCmd_0
`
	_, err := New(nil, nil).Convert(strings.NewReader(input), "bad")
	require.ErrorIs(t, err, diagnostic.ErrFieldShape)
	assert.Len(t, diagnostic.AsError(err), 3)
	assert.Contains(t, err.Error(), "parsing bad")
}

func TestLexicalErrorSuggests(t *testing.T) {
	_, err := New(nil, nil).Convert(strings.NewReader("Controlr_1 PID Gains_0 Limits_0\n"), "typo")
	require.ErrorIs(t, err, diagnostic.ErrLexical)

	errs := diagnostic.AsError(err)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Suggestions, "Controller_")
}

func TestIdempotence(t *testing.T) {
	for _, input := range []string{sharedController, twoVector} {
		a := convert(t, input)
		b := convert(t, input)

		assert.Empty(t, cmp.Diff(string(a.YAML), string(b.YAML)))
	}
}

func TestRoundTrip(t *testing.T) {
	res := convert(t, twoVector)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(res.YAML, &decoded))

	pvs := decoded["Primary Vector Configurations"].([]any)
	require.Len(t, pvs, 1)

	pv := pvs[0].(map[string]any)["Primary Vector"].(map[string]any)
	want := map[string]any{
		"Description": "nadir",
		"Target": map[string]any{
			"Type":  "VEC",
			"Frame": "H",
			"Axis":  []any{0.0, 0.0, 1.0},
		},
		"Axis": []any{1.0, 0.0, 0.0},
	}

	ctrl := pv["Controller"].(map[string]any)
	assert.Equal(t, "PID", ctrl["Type"])

	delete(pv, "Controller")
	delete(pv, "Actuator")
	assert.Empty(t, cmp.Diff(want, pv))

	cmds := decoded[record.CommandsKey].([]any)
	require.Len(t, cmds, 2)

	ev := cmds[1].(map[string]any)["Command Sequence"].([]any)[0].(map[string]any)
	assert.Equal(t, 5.0, ev["Time"])

	subs := ev["Commands"].([]any)
	require.Len(t, subs, 2)
	assert.Equal(t, map[string]any{"Type": "Translation", "Subtype": "Passive"}, subs[0])

	data := subs[1].(map[string]any)["Command Data"].(map[string]any)
	secondary := data["Secondary Vector"].(map[string]any)
	assert.Equal(t, []any{0.0, 1.0, 0.0}, secondary["Axis"])
}

func TestUnreferencedWarnings(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	input := twoVector + "MirrorCmd_4 MOON Controller_0 Actuators_0\nGains_5 Custom 1 2\n"

	res, err := New(nil, zap.New(core)).Convert(strings.NewReader(input), "warn")
	require.NoError(t, err)

	require.Len(t, res.Diagnostics.Warnings, 1)
	assert.Equal(t, "Mirror_4", res.Diagnostics.Warnings[0].Token)
	assert.Equal(t, diagnostic.CodeUnreferenced, res.Diagnostics.Warnings[0].Code)

	require.Len(t, res.Diagnostics.Infos, 1)
	assert.Equal(t, "Gains_5", res.Diagnostics.Infos[0].Token)

	entries := logs.FilterMessage("Unreferenced command configuration").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Mirror_4", entries[0].ContextMap()["record"])
}

func TestConfigIsHonored(t *testing.T) {
	cfg, err := config.Parse([]byte(`
comment_delimiter: "!"
indent: 4
comments:
  start: generated
  keys:
    DSM Commands: [timeline]
`))
	require.NoError(t, err)

	input := "Actuators_0 WHL ! reaction wheel\n"

	res, err := New(cfg, nil).Convert(strings.NewReader(input), "cfg")
	require.NoError(t, err)

	s := string(res.YAML)
	assert.True(t, strings.HasPrefix(s, "# generated"))
	assert.Contains(t, s, "# timeline\nDSM Commands: []")
	assert.Contains(t, s, "Description: reaction wheel")
	assert.Contains(t, s, "\n    - Actuator:")
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.yaml")

	require.NoError(t, WriteFileAtomic(path, []byte("a: 1\n")))
	require.NoError(t, WriteFileAtomic(path, []byte("a: 2\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a: 2\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.Error(t, WriteFileAtomic(filepath.Join(path, "under-a-file.yaml"), nil))
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "/m/InOut/Inp_DSM.yaml", OutputPath("/m/InOut/Inp_DSM.txt", ".yaml"))
	assert.Equal(t, "Inp_DSM.yml", OutputPath("Inp_DSM", ".yml"))
}
