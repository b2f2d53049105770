package convert

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"txt2yaml/internal/config"
	"txt2yaml/internal/diagnostic"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestMissionDir(t *testing.T) {
	root := t.TempDir()
	assert.Equal(t, root, MissionDir(root))

	inOut := filepath.Join(root, MissionSubdir)
	require.NoError(t, os.Mkdir(inOut, 0o755))
	assert.Equal(t, inOut, MissionDir(root))
}

func TestConvertMission(t *testing.T) {
	root := t.TempDir()
	inOut := filepath.Join(root, MissionSubdir)
	require.NoError(t, os.Mkdir(inOut, 0o755))

	writeInput(t, inOut, "Inp_DSM.txt", sharedController)
	writeInput(t, inOut, "Inp_DSM_b.txt", twoVector)
	writeInput(t, inOut, "Inp_Sim.txt", "not a DSM file")
	require.NoError(t, os.Mkdir(filepath.Join(inOut, "Inp_DSM_dir.txt"), 0o755))

	cfg := config.Default()
	cfg.Workers = 1

	results, err := New(cfg, nil).ConvertMission(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, filepath.Join(inOut, "Inp_DSM.yaml"), results[0].Output)
	assert.Equal(t, filepath.Join(inOut, "Inp_DSM_b.yaml"), results[1].Output)

	for _, res := range results {
		data, err := os.ReadFile(res.Output)
		require.NoError(t, err)
		assert.Equal(t, res.YAML, data)
	}

	assert.NoFileExists(t, filepath.Join(inOut, "Inp_Sim.yaml"))
}

func TestConvertMissionFailure(t *testing.T) {
	root := t.TempDir()
	writeInput(t, root, "Inp_DSM_a.txt", twoVector)
	writeInput(t, root, "Inp_DSM_b.txt", "DetumbleCmd_0 Controller_3 Actuators_0\n")

	_, err := New(nil, nil).ConvertMission(context.Background(), root)
	require.ErrorIs(t, err, diagnostic.ErrDanglingReference)
	assert.NoFileExists(t, filepath.Join(root, "Inp_DSM_b.yaml"))
}

func TestConvertMissionCanceled(t *testing.T) {
	root := t.TempDir()
	writeInput(t, root, "Inp_DSM.txt", twoVector)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil, nil).ConvertMission(ctx, root)
	require.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(root, "Inp_DSM.yaml"))
}

type watchLog struct {
	mu      sync.Mutex
	results map[string][]*Result
	errs    map[string][]error
}

func (w *watchLog) record(input string, res *Result, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	base := filepath.Base(input)
	if err != nil {
		w.errs[base] = append(w.errs[base], err)

		return
	}

	w.results[base] = append(w.results[base], res)
}

func (w *watchLog) count(base string) (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.results[base]), len(w.errs[base])
}

func TestWatch(t *testing.T) {
	root := t.TempDir()
	writeInput(t, root, "Inp_DSM.txt", sharedController)

	log := &watchLog{results: map[string][]*Result{}, errs: map[string][]error{}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- New(nil, nil).Watch(ctx, root, log.record)
	}()

	require.Eventually(t, func() bool {
		n, _ := log.count("Inp_DSM.txt")

		return n >= 1
	}, 5*time.Second, 10*time.Millisecond)

	assert.FileExists(t, filepath.Join(root, "Inp_DSM.yaml"))

	// A new input appears through a rename so it is never read half written.
	tmp := writeInput(t, root, "staging.tmp", twoVector)
	require.NoError(t, os.Rename(tmp, filepath.Join(root, "Inp_DSM_new.txt")))

	require.Eventually(t, func() bool {
		n, _ := log.count("Inp_DSM_new.txt")

		return n >= 1
	}, 5*time.Second, 10*time.Millisecond)

	bad := writeInput(t, root, "staging2.tmp", "Bogus_1 2 3\n")
	require.NoError(t, os.Rename(bad, filepath.Join(root, "Inp_DSM_bad.txt")))

	require.Eventually(t, func() bool {
		_, n := log.count("Inp_DSM_bad.txt")

		return n >= 1
	}, 5*time.Second, 10*time.Millisecond)

	assert.NoFileExists(t, filepath.Join(root, "Inp_DSM_bad.yaml"))

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}

	n, _ := log.count("staging.tmp")
	assert.Zero(t, n)
}

func TestWatchMissingDir(t *testing.T) {
	err := New(nil, nil).Watch(context.Background(), filepath.Join(t.TempDir(), "absent"), nil)
	require.Error(t, err)
}
