/*
Package memory provides in-memory implementations of the controller's
capability ports.

They back the simulator CLI and the test suite: every rail command is
journaled in issue order, and individual operations can be programmed to fail
so abort paths can be exercised. Safe for concurrent use.
*/
package memory
