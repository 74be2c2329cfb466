package domain

import "go.trai.ch/zerr"

var (
	// ErrModuleAlreadyExists is returned when a module name is added to the graph twice.
	ErrModuleAlreadyExists = zerr.New("module already exists")

	// ErrModuleNotFound is returned when a requested module is not part of the project.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrUnknownDependency is returned when a module imports a name that is neither a project module
	// nor a prebuilt interface.
	ErrUnknownDependency = zerr.New("unknown module dependency")

	// ErrCircularDependency is returned when the module graph cannot be fully ordered.
	ErrCircularDependency = zerr.New("circular module dependency detected")

	// ErrMissingDependency is returned when the planner has no interface artifact for a declared dependency.
	ErrMissingDependency = zerr.New("missing dependency interface")

	// ErrUnsupportedIntent is returned when a toolchain cannot translate a build intent into a command.
	ErrUnsupportedIntent = zerr.New("unsupported build intent")

	// ErrInvalidConfiguration is returned when a build configuration holds a value outside its range.
	ErrInvalidConfiguration = zerr.New("invalid build configuration")

	// ErrUnknownToolchain is returned when the configured toolchain kind is not recognized.
	ErrUnknownToolchain = zerr.New("unknown toolchain")

	// ErrArtifactDirectory is returned when a module's artifact directory cannot be created.
	ErrArtifactDirectory = zerr.New("failed to create artifact directory")

	// ErrProcessStart is returned when the operating system cannot create the child process.
	ErrProcessStart = zerr.New("failed to start process")

	// ErrCommandFailed is returned when an executed command exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrSourceNotFound is returned when a source pattern matches no file.
	ErrSourceNotFound = zerr.New("source not found")

	// ErrNoModules is returned when the project declares no modules.
	ErrNoModules = zerr.New("no modules defined")

	// ErrNoLinkTarget is returned when linking is requested without an output path.
	ErrNoLinkTarget = zerr.New("no link output configured")

	// ErrManifestEmpty is returned when linking from a manifest that records no objects.
	ErrManifestEmpty = zerr.New("build manifest has no objects")

	// ErrBuildExecutionFailed is returned when the build finished with at least one failed module.
	ErrBuildExecutionFailed = zerr.New("build execution failed")
)
