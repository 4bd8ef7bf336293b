package models

import (
	"strconv"
	"strings"
)

// ServiceInfo carries the price and confirmation wording for one service type.
type ServiceInfo struct {
	Price   int    `json:"price"` // 0 means free
	Icon    string `json:"icon"`
	Message string `json:"message"` // service-specific confirmation line
}

// ServiceCatalog maps canonical service type names to their info.
type ServiceCatalog map[string]ServiceInfo

// DefaultServiceCatalog mirrors the supported service set with pricing.
var DefaultServiceCatalog = ServiceCatalog{
	"Doctor Appointment":     {Price: 100, Icon: "🏥", Message: "Your health is our priority!"},
	"Salon Service":          {Price: 50, Icon: "💇", Message: "Get ready to look fabulous!"},
	"Hotel Reservation":      {Price: 150, Icon: "🏨", Message: "Enjoy your comfortable stay!"},
	"Event Booking":          {Price: 200, Icon: "🎉", Message: "Let's make your event memorable!"},
	"Fitness Class":          {Price: 30, Icon: "💪", Message: "Time to get fit and healthy!"},
	"Restaurant Reservation": {Price: 0, Icon: "🍽️", Message: "Bon appétit! Enjoy your meal!"},
	"Travel Booking":         {Price: 500, Icon: "✈️", Message: "Have an amazing journey!"},
	"Spa Treatment":          {Price: 120, Icon: "🧖", Message: "Relax and rejuvenate!"},
	"Consultation":           {Price: 80, Icon: "📋", Message: "We look forward to helping you!"},
}

// Lookup returns the info for a service type, matching case-insensitively.
func (c ServiceCatalog) Lookup(serviceType string) (string, ServiceInfo, bool) {
	for name, info := range c {
		if strings.EqualFold(name, serviceType) {
			return name, info, true
		}
	}
	return "", ServiceInfo{}, false
}

// PriceLabel renders a service's price for summaries and emails.
func (i ServiceInfo) PriceLabel() string {
	if i.Price <= 0 {
		return "Free"
	}
	return "$" + strconv.Itoa(i.Price)
}
