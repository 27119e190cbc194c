package main

import "github.com/Co-vengers/progress-log-api/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.ConnectFirebase()
	defer app.DisconnectFirebase()

	app.MustListenAndServeHTTP()
}
