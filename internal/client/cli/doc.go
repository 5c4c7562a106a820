// Package cli implements the interactive MessMate shell.
//
// The shell is a small REPL: one session manager owns authentication,
// and two collection synchronizers hold the meal and expense listings
// currently on screen. Commands either mutate via the services or page
// through the synchronizers.
//
// Commands
//
//	signin / signup / logout / whoami
//	meals [YYYY-MM] / more / refresh / stats / addmeal / delmeal <id>
//	expenses [YYYY-MM] / emore / erefresh / addexpense / delexpense <id>
//	users / help / exit
package cli
