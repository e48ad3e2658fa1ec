package swift

// Version of the analyzer, reported by the CLI and the REPL banner.
const Version = "0.4.0"
