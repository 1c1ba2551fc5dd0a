// Command seed loads a YAML fixture file and inserts the baseline
// departments, classes, rooms, equipment and accounts a fresh
// deployment needs.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/linskybing/reservation-go/config"
	"github.com/linskybing/reservation-go/db"
	"github.com/linskybing/reservation-go/models"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
)

type fixture struct {
	Departments []struct {
		Name    string `yaml:"name"`
		Classes []struct {
			Name  string `yaml:"name"`
			Grade int    `yaml:"grade"`
		} `yaml:"classes"`
	} `yaml:"departments"`
	Rooms []struct {
		Name     string `yaml:"name"`
		Type     string `yaml:"type"`
		Capacity int    `yaml:"capacity"`
	} `yaml:"rooms"`
	Equipment []struct {
		Name     string `yaml:"name"`
		Category string `yaml:"category"`
		Quantity int    `yaml:"quantity"`
	} `yaml:"equipment"`
	Users []struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		FullName string `yaml:"full_name"`
		Role     string `yaml:"role"`
	} `yaml:"users"`
}

func main() {
	path := flag.String("f", "cmd/seed/fixtures.yaml", "fixture file")
	flag.Parse()

	config.LoadConfig()
	db.Init()

	raw, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("read fixture: %v", err)
	}

	var fx fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		log.Fatalf("parse fixture: %v", err)
	}

	for _, d := range fx.Departments {
		dept := models.Department{Name: d.Name}
		if err := db.DB.Where(models.Department{Name: d.Name}).FirstOrCreate(&dept).Error; err != nil {
			log.Fatalf("seed department %q: %v", d.Name, err)
		}
		for _, c := range d.Classes {
			class := models.Class{Name: c.Name, Grade: c.Grade, DepartmentID: dept.DID}
			if err := db.DB.Where(models.Class{Name: c.Name, DepartmentID: dept.DID}).FirstOrCreate(&class).Error; err != nil {
				log.Fatalf("seed class %q: %v", c.Name, err)
			}
		}
	}

	for _, r := range fx.Rooms {
		room := models.Room{
			Name:      r.Name,
			Type:      models.RoomType(r.Type),
			Capacity:  r.Capacity,
			Available: true,
		}
		if err := db.DB.Where(models.Room{Name: r.Name}).FirstOrCreate(&room).Error; err != nil {
			log.Fatalf("seed room %q: %v", r.Name, err)
		}
	}

	for _, e := range fx.Equipment {
		eq := models.Equipment{
			Name:              e.Name,
			Category:          e.Category,
			TotalQuantity:     e.Quantity,
			AvailableQuantity: e.Quantity,
		}
		if err := db.DB.Where(models.Equipment{Name: e.Name}).FirstOrCreate(&eq).Error; err != nil {
			log.Fatalf("seed equipment %q: %v", e.Name, err)
		}
	}

	for _, u := range fx.Users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash password for %q: %v", u.Username, err)
		}
		user := models.User{
			Username: u.Username,
			Password: string(hashed),
			FullName: u.FullName,
			Role:     models.UserRole(u.Role),
			Status:   string(models.UserStatusActive),
		}
		if err := db.DB.Where(models.User{Username: u.Username}).FirstOrCreate(&user).Error; err != nil {
			log.Fatalf("seed user %q: %v", u.Username, err)
		}
	}

	log.Printf("seeded %d departments, %d rooms, %d equipment items, %d users",
		len(fx.Departments), len(fx.Rooms), len(fx.Equipment), len(fx.Users))
}
