package main

import (
	"fmt"
	"os"
	"strings"

	"license-manager/src/config"
	"license-manager/src/db"
	"license-manager/src/license"
	"license-manager/src/mail"
	"license-manager/src/server"
	"license-manager/src/utils"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		runServer()
		return
	}

	switch strings.ToLower(os.Args[1]) {
	case "server":
		runServer()
	case "license":
		fmt.Println(utils.GenerateLicenseKey())
	default:
		fmt.Println("unsupported command")
	}
}

func runServer() {
	if err := config.Init(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	conn, err := db.Init(config.DBName)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer conn.Close()

	store := license.NewPGStore(conn)
	if err := store.EnsureSchema(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	var notify server.LicenseNotifier
	if config.SendgridAPIKey != "" {
		notify = mail.SendLicenseMail
	}

	identity := server.NewHeaderIdentity(config.AdminEmails)

	s := server.NewServe(store, identity, notify)
	s.InitServer(config.Port)
}
