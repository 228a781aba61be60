package config

import (
	"log"

	"carwash-backend/models"

	"github.com/shopspring/decimal"
)

type priceListSeed struct {
	Category string
	Vehicle  string
	Price    int64
}

// Default catalog, loaded once into an empty price_list table. A zero price
// means "quote on arrival".
var defaultPriceList = []priceListSeed{
	{"Full Wash", "Car", 110},
	{"Full Wash", "SUV / Double & Single Cab", 150},
	{"Full Wash", "Combi / Mini Van", 180},
	{"Full Wash", "Motorbike", 60},
	{"Full Wash", "22-Seater Bus", 200},

	{"Wash & Go", "Car", 60},
	{"Wash & Go", "SUV / Double & Single Cab", 70},
	{"Wash & Go", "Combi / Mini Van", 80},
	{"Wash & Go", "Mine vehicles (quote on arrival)", 0},

	{"Valet", "Car", 550},
	{"Valet", "SUV / Double & Single Cab", 650},
	{"Valet", "Combi / Mini Van", 750},
	{"Valet", "Mine vehicles", 900},

	{"Polish", "Car", 80},
	{"Polish", "SUV / Double & Single Cab", 100},
	{"Polish", "Motorbike", 50},
	{"Polish", "Tyres", 50},

	{"Other Washes", "Seats", 80},
	{"Other Washes", "Engine Wash", 60},
	{"Other Washes", "Leather Seat Treatment", 60},
	{"Other Washes", "Chassis Wash", 80},

	{"Wash & Dry", "Boat & Trailer", 300},
	{"Wash & Dry", "Caravan", 350},

	{"Something a little extra", "Colour Foam Wash", 70},
	{"Something a little extra", "Sticker Removal", 600},
	{"Something a little extra", "Headlight Magic (per set)", 500},
}

// SeedPriceList loads the default catalog when the table is empty
func SeedPriceList() {
	var count int64
	if err := DB.Model(&models.PriceListItem{}).Count(&count).Error; err != nil {
		log.Printf("Failed to check price list: %v", err)
		return
	}
	if count > 0 {
		return
	}

	for _, seed := range defaultPriceList {
		item := models.PriceListItem{
			Category: seed.Category,
			Vehicle:  seed.Vehicle,
			Price:    decimal.NewFromInt(seed.Price),
			IsActive: true,
		}
		if err := DB.Create(&item).Error; err != nil {
			log.Printf("Failed to seed price list item %s / %s: %v", seed.Category, seed.Vehicle, err)
		}
	}
	log.Printf("Seeded price list with %d items", len(defaultPriceList))
}
