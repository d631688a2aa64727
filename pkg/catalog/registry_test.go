package catalog_test

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-paraminfo/pkg/catalog"
	"github.com/goliatone/go-paraminfo/pkg/param"
	"github.com/goliatone/go-paraminfo/pkg/signature"
)

func add(a, b int) int { return a + b }

func TestRegistry_RegisterAndDescribe(t *testing.T) {
	reg := catalog.NewRegistry()
	if err := reg.Register("add", add, "a", "b"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	sig, err := reg.Describe("add")
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if got := sig.String(); got != "add(a int, b int) (int)" {
		t.Fatalf("unexpected signature %q", got)
	}
	types := sig.ParamTypes()
	if len(types) != 2 || types[0] != reflect.TypeOf(0) || types[1] != reflect.TypeOf(0) {
		t.Fatalf("unexpected types %v", types)
	}
}

func TestRegistry_Errors(t *testing.T) {
	reg := catalog.NewRegistry()
	if err := reg.Register("add", add); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Register("add", add); !errors.Is(err, catalog.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if err := reg.Register("value", 3); !errors.Is(err, param.ErrNotFunc) {
		t.Fatalf("expected ErrNotFunc, got %v", err)
	}
	if err := reg.Register(" ", add); !errors.Is(err, signature.ErrUnnamed) {
		t.Fatalf("expected ErrUnnamed, got %v", err)
	}
	if err := reg.Register("too-many", add, "a", "b", "c"); !errors.Is(err, param.ErrNameCount) {
		t.Fatalf("expected ErrNameCount, got %v", err)
	}
	if _, err := reg.Describe("missing"); !errors.Is(err, catalog.ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
	if _, ok := reg.Lookup("missing"); ok {
		t.Fatalf("expected lookup miss")
	}
	if err := reg.Rename("missing", "x"); !errors.Is(err, catalog.ErrUnknown) {
		t.Fatalf("expected ErrUnknown from Rename, got %v", err)
	}
}

func TestRegistry_Rename(t *testing.T) {
	reg := catalog.NewRegistry()
	if err := reg.Register("add", add); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := reg.Rename("add", "left", "right"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	sig, ok := reg.Lookup("add")
	if !ok {
		t.Fatalf("expected lookup hit")
	}
	if got := sig.String(); got != "add(left int, right int) (int)" {
		t.Fatalf("unexpected signature %q", got)
	}
}

func TestDefault_Names(t *testing.T) {
	reg := catalog.Default()
	want := []string{
		"errors.New",
		"fmt.Sprintf",
		"math.Max",
		"os.Getenv",
		"os.Getpid",
		"strconv.FormatInt",
		"strconv.ParseBool",
		"strings.Cut",
		"strings.Repeat",
		"time.Sleep",
	}
	if diff := cmp.Diff(want, reg.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	sig, ok := reg.Lookup("fmt.Sprintf")
	if !ok {
		t.Fatalf("expected fmt.Sprintf")
	}
	if got := sig.String(); got != "fmt.Sprintf(format string, a ...interface {}) (string)" {
		t.Fatalf("unexpected signature %q", got)
	}

	pid, _ := reg.Lookup("os.Getpid")
	if types := pid.ParamTypes(); types == nil || len(types) != 0 {
		t.Fatalf("expected empty parameter types for os.Getpid, got %#v", types)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := catalog.Default()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, name := range reg.Names() {
				if _, err := reg.Describe(name); err != nil {
					t.Errorf("Describe(%s): %v", name, err)
				}
			}
		}()
	}
	wg.Wait()
}
