// internal/fixture/fixture.go
package fixture

import (
	"fmt"

	"github.com/unclebandit/bankrec-mock-backend/internal/model"
)

// DatasetSize is the number of fixture customers served by the mock.
const DatasetSize = 120

var maleNames = []string{
	"Aarav", "Vivaan", "Aditya", "Rohan", "Arjun",
	"Karan", "Rahul", "Sameer", "Nikhil", "Varun",
}

var femaleNames = []string{
	"Ananya", "Diya", "Isha", "Kavya", "Meera",
	"Neha", "Priya", "Riya", "Sana", "Tara",
}

var lastNames = []string{
	"Sharma", "Verma", "Patel", "Reddy", "Iyer", "Khan",
	"Gupta", "Nair", "Singh", "Das", "Mehta", "Rao",
}

type cityState struct {
	city  string
	state string
}

var cityStates = []cityState{
	{"Mumbai", "Maharashtra"},
	{"Bengaluru", "Karnataka"},
	{"Chennai", "Tamil Nadu"},
	{"Hyderabad", "Telangana"},
	{"Pune", "Maharashtra"},
	{"New Delhi", "Delhi"},
	{"Kolkata", "West Bengal"},
	{"Ahmedabad", "Gujarat"},
	{"Jaipur", "Rajasthan"},
	{"Lucknow", "Uttar Pradesh"},
	{"Kochi", "Kerala"},
	{"Chandigarh", "Punjab"},
}

var occupations = []string{
	"Software Engineer", "Teacher", "Doctor", "Shop Owner", "Accountant",
	"Farmer", "Lawyer", "Nurse", "Bank Clerk", "Marketing Manager",
}

var incomeBrackets = []string{"0-3L", "3-6L", "6-10L", "10-20L", "20L+"}

var productNames = []string{
	"Savings Account", "Fixed Deposit", "Recurring Deposit", "Credit Card",
	"Personal Loan", "Home Loan", "Mutual Fund", "Health Insurance",
}

var accountTypes = []string{"Savings", "Current", "Salary", "NRI"}

var statuses = []string{"Active", "Dormant", "Closed"}

var reasonTemplates = []string{
	"Consistent surplus in the {income_bracket} bracket makes {product} a natural next step.",
	"Spending pattern of a {occupation} in {city} matches typical {product} holders.",
	"Age {age} with stable income suggests a long horizon for {product}.",
	"Frequent transactions and low idle balance point towards {product}.",
	"Profile is similar to existing {product} customers in {state}.",
}

// customers is built once at startup and never mutated afterwards.
var customers = buildCustomers()

func buildCustomers() []model.Customer {
	out := make([]model.Customer, 0, DatasetSize)
	for i := 1; i <= DatasetSize; i++ {
		var gender, first string
		if i%2 == 1 {
			gender = "male"
			first = maleNames[(i/2)%len(maleNames)]
		} else {
			gender = "female"
			first = femaleNames[(i/2)%len(femaleNames)]
		}
		last := lastNames[i%len(lastNames)]
		cs := cityStates[i%len(cityStates)]
		age := 21 + (i*7)%45
		// Fixed spread inside [0.30, 0.95] so thresholds have data on both sides.
		confidence := 0.30 + float64((i*37)%66)/100.0
		product := productNames[i%len(productNames)]
		occupation := occupations[i%len(occupations)]
		bracket := incomeBrackets[i%len(incomeBrackets)]

		c := model.Customer{
			ID:                 i,
			Name:               first + " " + last,
			Gender:             gender,
			Age:                age,
			City:               cs.city,
			State:              cs.state,
			Occupation:         occupation,
			IncomeBracket:      bracket,
			RecommendedProduct: product,
			Confidence:         confidence,
			Reason: RenderReason(reasonTemplates[i%len(reasonTemplates)], map[string]string{
				"product":        product,
				"occupation":     occupation,
				"city":           cs.city,
				"state":          cs.state,
				"age":            fmt.Sprintf("%d", age),
				"income_bracket": bracket,
			}),
		}
		out = append(out, c)
	}
	return out
}

// Customers returns the fixture dataset in ascending id order.
// Callers must treat the returned slice as read-only.
func Customers() []model.Customer {
	return customers
}

// Products returns the fixed product list.
func Products() []model.Product {
	out := make([]model.Product, len(productNames))
	for i, name := range productNames {
		out[i] = model.Product{Name: name}
	}
	return out
}

// Options returns the static filter enumerations, with age bounds taken
// from the dataset itself.
func Options() model.FilterOptions {
	minAge, maxAge := customers[0].Age, customers[0].Age
	for _, c := range customers {
		if c.Age < minAge {
			minAge = c.Age
		}
		if c.Age > maxAge {
			maxAge = c.Age
		}
	}

	states := []string{}
	seen := map[string]bool{}
	for _, cs := range cityStates {
		if !seen[cs.state] {
			seen[cs.state] = true
			states = append(states, cs.state)
		}
	}

	return model.FilterOptions{
		MinAge:         minAge,
		MaxAge:         maxAge,
		States:         states,
		AccountTypes:   append([]string{}, accountTypes...),
		Statuses:       append([]string{}, statuses...),
		Products:       append([]string{}, productNames...),
		IncomeBrackets: append([]string{}, incomeBrackets...),
	}
}
