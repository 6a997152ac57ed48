package rigkit

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func TestApp_addResources(t *testing.T) {
	app := NewApp()

	resource1 := &MockResource1{name: "Resource1"}
	app.addResources(resource1)

	stored, ok := app.resources[reflect.TypeOf(MockResource1{})]
	require.True(t, ok, "resource should be registered under its element type")
	assert.Same(t, resource1, stored)

	// Registering a second resource of the same type is a programmer error.
	assert.Panics(t, func() {
		app.addResources(&MockResource1{name: "Duplicate"})
	})

	// A different type is fine.
	assert.NotPanics(t, func() {
		app.addResources(&MockResource2{name: "Resource2"})
	})
}

func TestApp_callSystemInjection(t *testing.T) {
	app := NewApp()
	app.addResources(&MockResource1{name: "injected"})

	var gotName string
	var gotCmd *Commands
	app.callSystem(func(cmd *Commands, res *MockResource1) {
		gotCmd = cmd
		gotName = res.name
	})

	require.NotNil(t, gotCmd)
	assert.Same(t, app, gotCmd.app)
	assert.Equal(t, "injected", gotName)
}

func TestApp_callSystemUnknownDependency(t *testing.T) {
	app := NewApp()

	assert.Panics(t, func() {
		app.callSystem(func(res *MockResource2) {})
	})
}

func TestApp_RunOnceStageOrder(t *testing.T) {
	app := NewApp()

	var order []string
	record := func(name string) systemScheduleBuilder {
		return System(func(cmd *Commands) {
			order = append(order, name)
		})
	}

	app.UseSystem(record("post").InStage(PostUpdate))
	app.UseSystem(record("startup").InStage(Startup))
	app.UseSystem(record("update").InStage(Update))
	app.UseSystem(record("finale").InStage(Finale))

	app.RunOnce()

	assert.Equal(t, []string{"startup", "update", "post", "finale"}, order)
}

func TestApp_RunOnceFlushesBetweenStages(t *testing.T) {
	app := NewApp()

	var visibleInUpdate int
	app.UseSystem(System(func(cmd *Commands) {
		cmd.AddEntity(&NameComponent{Name: "made-in-startup"})
	}).InStage(Startup))
	app.UseSystem(System(func(cmd *Commands) {
		MakeQuery1[NameComponent](cmd).Map(func(EntityId, *NameComponent) bool {
			visibleInUpdate++
			return true
		})
	}).InStage(Update))

	app.RunOnce()

	assert.Equal(t, 1, visibleInUpdate, "startup additions should be flushed before update")
}

func TestApp_UseStageInsertion(t *testing.T) {
	app := NewApp()
	bake := Stage{Name: "Bake"}
	app.UseStage(bake, BeforeStage(PostUpdate))

	var order []string
	record := func(name string, stage Stage) {
		app.UseSystem(System(func(cmd *Commands) {
			order = append(order, name)
		}).InStage(stage))
	}
	record("update", Update)
	record("bake", bake)
	record("post", PostUpdate)

	app.RunOnce()

	assert.Equal(t, []string{"update", "bake", "post"}, order)

	assert.Panics(t, func() {
		app.UseStage(Stage{Name: "Lost"}, AfterStage(Stage{Name: "NoSuchStage"}))
	})
}

func TestApp_LoggerFallback(t *testing.T) {
	app := NewApp()
	assert.NotNil(t, app.Logger(), "logger accessor should never return nil")

	app.UseModules(LoggingModule{Prefix: "test"})
	if _, ok := app.Logger().(*DefaultLogger); !ok {
		t.Errorf("expected installed DefaultLogger, got %T", app.Logger())
	}
}
