// Verifier is a judicial-process verification service for JusCash.
//
// It exposes an HTTP API that evaluates judicial process records against
// the JusCash acquisition policy by delegating the judgment to a
// structured-output reasoning service:
//
//	# Start server with default configuration
//	verifier run
//
//	# Start with custom configuration file
//	verifier run --config /path/to/config.yaml
//
//	# Show version information
//	verifier version
//
//	# Print the active policy document
//	verifier policy
package main

func main() {
	Execute()
}
