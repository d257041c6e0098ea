// Command ergolog prints a tour of the logger: levels, named loggers,
// nested and keyword tags, wrapped functions, job tags and timers.
//
//	ergolog                  run the demo
//	ergolog --no-time demo   run it without timestamps
//	ergolog config           print the effective configuration
//	ergolog version          print build information
package main
