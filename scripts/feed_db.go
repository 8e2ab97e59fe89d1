package main

import (
	"app/base/database"
	"os"
)

// feed the testing database with sample CRM data
func main() {
	database.Configure()
	query, err := os.ReadFile("./dev/test_data.sql")
	if err != nil {
		panic(err)
	}
	err = database.DB.Exec(string(query)).Error
	if err != nil {
		panic(err)
	}
}
