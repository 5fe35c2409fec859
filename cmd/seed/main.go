package main

import (
	"github.com/sirupsen/logrus"

	"usersvc/internal/config"
	"usersvc/internal/db"
	"usersvc/internal/model"
)

var sampleUsers = []model.User{
	{FirstName: "Alice", LastName: "Wilson", Email: "alice@example.com", Age: 28},
	{FirstName: "Bob", LastName: "Nguyen", Email: "bob@example.com", Age: 34},
	{FirstName: "Carol", LastName: "Okafor", Email: "carol@example.com", Age: 41},
	{FirstName: "Dmitri", LastName: "Volkov", Email: "dmitri@example.com", Age: 25},
	{FirstName: "Elena", LastName: "Santos", Email: "elena@example.com", Age: 30},
}

// Seeds sample users for local development. Safe to run repeatedly: existing
// emails are left untouched.
func main() {
	logrus.Info("starting seed")

	cfg := config.Load()
	gormDB, err := db.NewMySQL(cfg.MySQLDSN, cfg.DBLogQueries)
	if err != nil {
		logrus.WithError(err).Fatal("database init")
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		logrus.WithError(err).Fatal("auto-migrate")
	}

	inserted := 0
	for _, u := range sampleUsers {
		user := u
		res := gormDB.Where(model.User{Email: user.Email}).FirstOrCreate(&user)
		if res.Error != nil {
			logrus.WithError(res.Error).WithField("email", user.Email).Fatal("seed user")
		}
		if res.RowsAffected > 0 {
			inserted++
		}
	}

	logrus.WithFields(logrus.Fields{
		"inserted": inserted,
		"skipped":  len(sampleUsers) - inserted,
	}).Info("seed complete")
}
