package gizmo

type AppBuilder struct {
	app     *App
	modules []Module
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{app: NewApp()}
}

func (b *AppBuilder) UseModule(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)

	return b
}

// Build installs modules in the order they were added. Modules that read other
// modules' resources at install time (the gizmo module reads the logger) must
// come after them.
func (b *AppBuilder) Build() *App {
	return b.app.UseModules(b.modules...)
}
