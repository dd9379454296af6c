// Package cli implements the lockerrelay command-line client.
//
// Commands:
//
//	login              prompt for credentials and show the assigned locker
//	clear [lockerId]   clear the notifications of lockerId; without an
//	                   argument, log in first and clear the user's own locker
//	help               print usage
package cli
