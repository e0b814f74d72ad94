// Package harness provides utilities for integration testing the ticket CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - TICKET_HOME: Isolated per test (temp directory)
//   - TICKET_DEBUG: Disabled to reduce noise
//   - TICKET_WORKSPACE, TICKET_TRUNK, TICKET_SYNC: Point at the test's git repository
package harness
