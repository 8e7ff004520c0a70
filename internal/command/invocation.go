package command

// Name constants for the supported subcommands
const (
	NameCommit  = "commit"
	NameExplain = "explain"
	NameConfig  = "config"
)

// Invocation is a parsed subcommand. The set of implementations is closed.
type Invocation interface {
	// Name returns the subcommand name
	Name() string
	isInvocation()
}

// optional holds a string that may be absent. An empty but present value
// is distinct from an absent one.
type optional struct {
	value string
	set   bool
}

// Commit asks for a commit message to be generated or used as given
type Commit struct {
	message optional
}

// NewCommit creates a Commit invocation. present reports whether a message
// was supplied on the command line.
func NewCommit(message string, present bool) Commit {
	if !present {
		message = ""
	}
	return Commit{message: optional{value: message, set: present}}
}

// Message returns the supplied message and whether one was supplied
func (c Commit) Message() (string, bool) {
	return c.message.value, c.message.set
}

// Name implements Invocation
func (Commit) Name() string { return NameCommit }

func (Commit) isInvocation() {}

// Explain asks for an explanation of a commit or of the staged changes
type Explain struct {
	hash optional
}

// NewExplain creates an Explain invocation. present reports whether a hash
// was supplied on the command line.
func NewExplain(hash string, present bool) Explain {
	if !present {
		hash = ""
	}
	return Explain{hash: optional{value: hash, set: present}}
}

// Hash returns the supplied commit hash and whether one was supplied
func (e Explain) Hash() (string, bool) {
	return e.hash.value, e.hash.set
}

// Name implements Invocation
func (Explain) Name() string { return NameExplain }

func (Explain) isInvocation() {}

// Config asks for the tool's configuration to be shown
type Config struct {
	verbose bool
}

// NewConfig creates a Config invocation
func NewConfig(verbose bool) Config {
	return Config{verbose: verbose}
}

// Verbose reports whether the detailed configuration was requested
func (c Config) Verbose() bool {
	return c.verbose
}

// Name implements Invocation
func (Config) Name() string { return NameConfig }

func (Config) isInvocation() {}
