package domain

import "strings"

// PayloadName is the well-known top-level archive path of the bootstrap payload.
const PayloadName = "bootstrap.yaml"

// Interpreter is the interpreter the bootstrap verifies and the environment
// is built around.
const Interpreter = "python3"

// payloadTemplate is the fixed bootstrap payload template. Rendering is pure
// text substitution; nothing here is executed at build time.
const payloadTemplate = `# Rendered at bundle time. Do not edit.
interpreter: ` + Interpreter + `
constraint: "${constraint}"
entry: "${entry}"
identity: "${identity}"
`

// RenderPayload renders the bootstrap payload for one entry point. All
// substitution values are explicit parameters; there is no process-wide
// template state.
func RenderPayload(constraint, entry, identity string) string {
	return strings.NewReplacer(
		"${constraint}", constraint,
		"${entry}", entry,
		"${identity}", identity,
	).Replace(payloadTemplate)
}

// Payload is the bootstrap payload as read back on the target machine.
type Payload struct {
	Interpreter string `yaml:"interpreter"`
	Constraint  string `yaml:"constraint"`
	Entry       string `yaml:"entry"`
	Identity    string `yaml:"identity"`
}

// Complete reports whether every payload field was present.
func (p Payload) Complete() bool {
	return p.Interpreter != "" && p.Constraint != "" && p.Entry != "" && p.Identity != ""
}
