package prtdecode_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/prt-labs/prtdecode/pkg/prtdecode"
)

// trackingPlugin tracks initialization and shutdown calls for testing.
type trackingPlugin struct {
	name          string
	initOrder     *[]string
	shutdownOrder *[]string
	initError     error

	mu          sync.Mutex
	initialized bool
	shutdown    bool
	cfg         prtdecode.PluginConfig
}

func newTrackingPlugin(name string, initOrder, shutdownOrder *[]string) *trackingPlugin {
	return &trackingPlugin{
		name:          name,
		initOrder:     initOrder,
		shutdownOrder: shutdownOrder,
	}
}

func (p *trackingPlugin) Name() string { return p.name }

func (p *trackingPlugin) Initialize(ctx context.Context, cfg prtdecode.PluginConfig) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initError != nil {
		return p.initError
	}
	p.initialized = true
	p.cfg = cfg
	*p.initOrder = append(*p.initOrder, p.name)
	return nil
}

func (p *trackingPlugin) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.shutdown = true
	*p.shutdownOrder = append(*p.shutdownOrder, p.name)
	return nil
}

func TestPlugins_InitializeInOrderShutdownInReverse(t *testing.T) {
	defer goleak.VerifyNone(t)

	var initOrder, shutdownOrder []string
	first := newTrackingPlugin("first", &initOrder, &shutdownOrder)
	second := newTrackingPlugin("second", &initOrder, &shutdownOrder)
	third := newTrackingPlugin("third", &initOrder, &shutdownOrder)

	dec, err := prtdecode.New(testConfig(),
		prtdecode.WithSource(blockSource{}),
		prtdecode.WithPlugin(first),
		prtdecode.WithPlugin(second),
		prtdecode.WithPlugin(third),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := dec.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	waitForState(t, dec, prtdecode.StateRunning)

	if err := dec.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	if diff := cmp.Diff([]string{"first", "second", "third"}, initOrder); diff != "" {
		t.Errorf("init order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"third", "second", "first"}, shutdownOrder); diff != "" {
		t.Errorf("shutdown order mismatch (-want +got):\n%s", diff)
	}
}

func TestPlugins_InitFailureAbortsStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	var initOrder, shutdownOrder []string
	good := newTrackingPlugin("good", &initOrder, &shutdownOrder)
	bad := newTrackingPlugin("bad", &initOrder, &shutdownOrder)
	bad.initError = errors.New("plugin exploded")

	dec, err := prtdecode.New(testConfig(),
		prtdecode.WithSource(blockSource{}),
		prtdecode.WithPlugin(good),
		prtdecode.WithPlugin(bad),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := dec.Start(context.Background()); err == nil {
		t.Fatal("Start() error = nil, want plugin init error")
	}
	if got := dec.Status(); got != prtdecode.StateCrashed {
		t.Errorf("Status() = %v, want StateCrashed", got)
	}
}

func TestPlugins_ReceiveSessionAndStats(t *testing.T) {
	defer goleak.VerifyNone(t)

	var initOrder, shutdownOrder []string
	plugin := newTrackingPlugin("probe", &initOrder, &shutdownOrder)

	dec, err := prtdecode.New(testConfig(),
		prtdecode.WithSource(newScriptSource("L,H", "L,I", "END")),
		prtdecode.WithPlugin(plugin),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := dec.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	waitForState(t, dec, prtdecode.StateStopped)

	plugin.mu.Lock()
	cfg := plugin.cfg
	plugin.mu.Unlock()

	if cfg.SessionID != dec.SessionID() {
		t.Errorf("plugin SessionID = %q, want %q", cfg.SessionID, dec.SessionID())
	}
	if cfg.Stats == nil {
		t.Fatal("plugin Stats accessor is nil")
	}

	// All three frames should be visible through the stats accessor once
	// decoding has finished.
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) && cfg.Stats().Frames < 3 {
		time.Sleep(5 * time.Millisecond)
	}
	if got := cfg.Stats().Frames; got != 3 {
		t.Errorf("Stats().Frames = %d, want 3", got)
	}
}
