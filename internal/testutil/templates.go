// internal/testutil/templates.go
package testutil

import (
	"sync"
	"testing"

	"github.com/dalemusser/connecthub/internal/app/resources"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

var (
	tmplOnce sync.Once
	tmplErr  error
)

// BootTemplates boots the template engine once per test binary so handlers
// under test render for real instead of erroring on a missing engine.
// Feature template sets register themselves on import; only the shared
// layout set needs loading here.
func BootTemplates(t *testing.T) {
	t.Helper()
	tmplOnce.Do(func() {
		resources.LoadSharedTemplates()
		eng := templates.New(false)
		if tmplErr = eng.Boot(zap.NewNop()); tmplErr != nil {
			return
		}
		templates.UseEngine(eng, zap.NewNop())
	})
	if tmplErr != nil {
		t.Fatalf("boot templates: %v", tmplErr)
	}
}
