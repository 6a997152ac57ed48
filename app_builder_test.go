package rigkit

import "testing"

type MockModule struct {
	installed bool
}

func (m *MockModule) Install(app *App, commands *Commands) {
	m.installed = true
}

func TestAppBuilder_UseModule(t *testing.T) {
	builder := NewAppBuilder()
	mockModule := &MockModule{}
	builder.UseModule(mockModule)

	if len(builder.modules) != 1 {
		t.Errorf("Expected modules to contain 1 module, got %v", len(builder.modules))
	}
	if mockModule.installed {
		t.Errorf("Install should not run before Build")
	}
}

func TestAppBuilder_Build_WithModules(t *testing.T) {
	builder := NewAppBuilder()
	module := &MockModule{}
	builder.UseModule(module)

	app := builder.Build()

	if !module.installed {
		t.Errorf("Expected Install to be called on the module, but it was not")
	}
	if len(app.modules) != 1 {
		t.Errorf("Expected app to track 1 module, got %v", len(app.modules))
	}
}

func TestAppBuilder_Build_WithMultipleModules(t *testing.T) {
	module1 := &MockModule{}
	module2 := &MockModule{}

	builder := NewAppBuilder()
	builder.UseModule(module1)
	builder.UseModule(module2)

	builder.Build()

	if !module1.installed {
		t.Errorf("Expected Install to be called on module1")
	}
	if !module2.installed {
		t.Errorf("Expected Install to be called on module2")
	}
}

func TestApp_UseModulesInstallsImmediately(t *testing.T) {
	module := &MockModule{}
	app := NewApp()
	app.UseModules(module)

	if !module.installed {
		t.Errorf("UseModules should install immediately")
	}
	if len(app.modules) != 1 {
		t.Errorf("Expected app to track 1 module, got %v", len(app.modules))
	}
}
