// Command nush is a small terminal walkthrough of the client SDK: browse
// the catalog, configure an item, build a cart, and check out against a
// running platform API (the dev server by default).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/jsoto007/nush/internal/api"
	"github.com/jsoto007/nush/internal/auth"
	"github.com/jsoto007/nush/internal/cart"
	"github.com/jsoto007/nush/internal/menu"
	"github.com/jsoto007/nush/internal/order"
	"github.com/jsoto007/nush/internal/restaurant"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	var (
		baseURL  = flag.String("api", "", "API base URL (default: NUSH_API_URL or local dev server)")
		email    = flag.String("email", "alice@nush.dev", "account email")
		password = flag.String("password", "password123", "account password")
	)
	flag.Parse()

	ctx := context.Background()
	client := api.NewClient(api.BaseURL(*baseURL))

	session := auth.NewSession(client)
	restaurants := restaurant.NewService(client)
	orders := order.NewService(client)
	store := cart.NewStore(client)

	user, err := session.Login(ctx, *email, *password)
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}
	fmt.Printf("signed in as %s (%s)\n", user.Name, user.Role)

	listed, err := restaurants.List(ctx)
	if err != nil {
		log.Fatalf("list restaurants: %v", err)
	}
	if len(listed) == 0 {
		log.Fatal("no restaurants available")
	}

	fmt.Println("\nrestaurants:")
	for _, r := range listed {
		fmt.Printf("  - %s (%s)\n", r.Name, r.ID)
	}

	chosen := listed[0]
	activeMenu, err := restaurants.ActiveMenu(ctx, chosen.ID)
	if err != nil {
		log.Fatalf("fetch menu: %v", err)
	}

	item, ok := firstConfigurableItem(activeMenu)
	if !ok {
		log.Fatalf("no active items on the %s menu", chosen.Name)
	}
	fmt.Printf("\nordering from %s: %s ($%.2f)\n",
		chosen.Name, item.Name, float64(item.BasePriceCents)/100)

	sel := defaultSelection(item)
	if !menu.AllValid(item, sel) {
		log.Fatal("could not satisfy the item's required options")
	}
	fmt.Printf("unit price with options: $%.2f\n", float64(menu.UnitPrice(item, sel))/100)

	if err := store.AddItem(ctx, chosen.ID, item, sel, 2, ""); err != nil {
		log.Fatalf("add to cart: %v", err)
	}

	current := store.Current()
	fmt.Printf("cart total: $%.2f (%d items)\n",
		float64(current.Totals.TotalCents)/100, len(current.Items))

	placed, err := orders.ConfirmCheckout(ctx, current.ID, nil)
	if err != nil {
		log.Fatalf("checkout: %v", err)
	}
	fmt.Printf("\norder %s placed, status %q, total $%.2f\n",
		placed.ID, placed.Status, float64(placed.Totals.TotalCents)/100)
}

// firstConfigurableItem picks the first active item on the menu.
func firstConfigurableItem(m *menu.Menu) (menu.Item, bool) {
	for _, category := range m.Categories {
		if !category.IsActive {
			continue
		}
		for _, item := range category.Items {
			if item.IsActive {
				return item, true
			}
		}
	}
	return menu.Item{}, false
}

// defaultSelection satisfies each required group by toggling its first
// active options until the minimum is met.
func defaultSelection(item menu.Item) menu.Selection {
	sel := menu.NewSelection()
	for _, group := range item.OptionGroups {
		if !group.IsActive {
			continue
		}
		needed := group.MinChoices
		if group.IsRequired && needed < 1 {
			needed = 1
		}
		for _, option := range group.Options {
			if needed == 0 {
				break
			}
			if option.IsActive {
				sel = menu.Toggle(group, option.ID, sel)
				needed--
			}
		}
	}
	return sel
}
