package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/nida1khurram/school-fee-app/app/auth"
	"github.com/nida1khurram/school-fee-app/app/config"
)

func main() {
	username := flag.String("username", "", "username of the new account")
	password := flag.String("password", "", "password of the new account")
	isAdmin := flag.Bool("admin", false, "grant admin rights")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Println("Usage: add_user -username <name> -password <password> [-admin]")
		os.Exit(1)
	}

	config.Load()
	store := auth.NewStore(config.Get().UsersFile)

	if err := store.Initialize(); err != nil {
		fmt.Printf("Error initializing user store: %v\n", err)
		os.Exit(1)
	}

	err := store.Create(*username, *password, *isAdmin)
	if errors.Is(err, auth.ErrUserExists) {
		fmt.Printf("User %q already exists\n", *username)
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s (admin: %v)\n", *username, *isAdmin)
}
