// Command debuglog is the companion tool for the debuglog package.
//
//	debuglog validate [dir]   report non-test files importing debuglog
//	debuglog docs [dir]       copy the usage guide into a project
//	debuglog env              show the settings the environment produces
//	debuglog version          print the build version
package main
