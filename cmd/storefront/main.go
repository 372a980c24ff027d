// The storefront binary boots the composed application and drives
// the mock gateway from an interactive console session.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hovixy/storefront/config"
	"github.com/hovixy/storefront/internal/adapter/gateway"
	"github.com/hovixy/storefront/internal/app"
	"github.com/hovixy/storefront/internal/core/domain"
	"github.com/hovixy/storefront/internal/core/service"
	"github.com/hovixy/storefront/pkg/sigctx"
)

const usage = `commands:
  products            list products for the current filter
  product <id>        show one product
  categories          list category labels
  category <name>     filter by category ("" resets)
  price <min> <max>   filter by price range
  rating <min>        filter by minimum rating
  sort <key> <order>  sort by name|price|rating asc|desc
  reset               reset filters
  add <id> [qty]      add product to cart
  remove <id>         remove product from cart
  qty <id> <n>        set line quantity
  cart                show cart
  toggle              open/close the cart panel
  checkout            place the order, clears the cart
  login <email> [pw]  mock sign-in
  logout              sign out, clears the cart
  user                show the signed-in user
  theme               toggle light/dark
  help                this text
  quit                exit`

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	a := app.New(sigCtx, cfg)

	console{
		ctx:      sigCtx,
		gw:       a.Gateway(),
		svc:      a.Service(),
		criteria: a.Service().DefaultFilter(),
	}.run()
}

type console struct {
	ctx      context.Context
	gw       gateway.Gateway
	svc      service.Storefront
	criteria domain.FilterCriteria
}

func (c console) run() {
	fmt.Printf("hovixy storefront (%s theme), type 'help' for commands\n", c.svc.Theme())

	sc := bufio.NewScanner(os.Stdin)
	for prompt(); sc.Scan(); prompt() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return
		}
		if err := c.dispatch(fields[0], fields[1:]); err != nil {
			fmt.Println("error:", err)
		}
		if c.ctx.Err() != nil {
			return
		}
	}
}

func prompt() {
	fmt.Print("> ")
}

func (c *console) dispatch(cmd string, args []string) error {
	switch cmd {
	case "products":
		return c.listProducts()
	case "product":
		return c.showProduct(args)
	case "categories":
		return c.listCategories()
	case "category":
		c.criteria.Category = strings.Join(args, " ")
		return c.listProducts()
	case "price":
		return c.setPriceRange(args)
	case "rating":
		return c.setMinRating(args)
	case "sort":
		return c.setSort(args)
	case "reset":
		c.criteria = c.svc.DefaultFilter()
		return c.listProducts()
	case "add":
		return c.addToCart(args)
	case "remove":
		return c.removeFromCart(args)
	case "qty":
		return c.updateQuantity(args)
	case "cart":
		return c.showCart()
	case "toggle":
		if c.svc.ToggleCart() {
			fmt.Println("cart panel open")
		} else {
			fmt.Println("cart panel closed")
		}
		return nil
	case "checkout":
		return c.checkout()
	case "login":
		return c.login(args)
	case "logout":
		_, err := c.gw.Logout(c.ctx)
		return err
	case "user":
		return c.showUser()
	case "theme":
		return c.toggleTheme()
	case "help":
		fmt.Println(usage)
		return nil
	default:
		return fmt.Errorf("unknown command %q, try 'help'", cmd)
	}
}

func (c console) listProducts() error {
	ps, err := c.gw.Products(c.ctx, c.criteria)
	if err != nil {
		return err
	}
	for _, p := range ps {
		printProduct(p)
	}
	fmt.Printf("%d product(s)\n", len(ps))
	return nil
}

func (c console) showProduct(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: product <id>")
	}
	p, err := c.gw.Product(c.ctx, args[0])
	if err != nil {
		return err
	}
	if p == nil {
		fmt.Println("no such product")
		return nil
	}
	printProduct(*p)
	fmt.Printf("  %s\n  tags: %s\n  features: %s\n",
		p.Description,
		strings.Join(p.Tags, ", "),
		strings.Join(p.Features, ", "))
	return nil
}

func (c console) listCategories() error {
	cats, err := c.gw.Categories(c.ctx)
	if err != nil {
		return err
	}
	fmt.Println(strings.Join(cats, ", "))
	return nil
}

func (c *console) setPriceRange(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: price <min> <max>")
	}
	minP, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return err
	}
	maxP, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return err
	}
	c.criteria.PriceRange = domain.PriceRange{Min: minP, Max: maxP}
	return c.listProducts()
}

func (c *console) setMinRating(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: rating <min>")
	}
	r, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return err
	}
	c.criteria.MinRating = r
	return c.listProducts()
}

func (c *console) setSort(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: sort name|price|rating asc|desc")
	}
	c.criteria.SortBy = domain.SortKey(args[0])
	c.criteria.SortOrder = domain.SortOrder(args[1])
	return c.listProducts()
}

func (c console) addToCart(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: add <id> [qty]")
	}
	qty := 1
	if len(args) == 2 {
		var err error
		if qty, err = strconv.Atoi(args[1]); err != nil {
			return err
		}
	}
	line, err := c.gw.AddToCart(c.ctx, args[0], qty)
	if err != nil {
		return err
	}
	fmt.Printf("in cart: %s x%d\n", line.Product.Name, line.Quantity)
	return nil
}

func (c console) removeFromCart(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: remove <id>")
	}
	_, err := c.gw.RemoveFromCart(c.ctx, args[0])
	return err
}

func (c console) updateQuantity(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: qty <id> <n>")
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return err
	}
	line, err := c.gw.UpdateCartQuantity(c.ctx, args[0], n)
	if err != nil {
		return err
	}
	if line.Quantity > 0 {
		fmt.Printf("in cart: %s x%d\n", line.Product.Name, line.Quantity)
	}
	return nil
}

func (c console) showCart() error {
	lines, err := c.gw.Cart(c.ctx)
	if err != nil {
		return err
	}
	var total float64
	for _, l := range lines {
		fmt.Printf("  [%s] %-24s x%d  %8.2f\n",
			l.Product.ProductID, l.Product.Name, l.Quantity, l.LineTotal())
		total += l.LineTotal()
	}
	fmt.Printf("subtotal: %.2f\n", total)
	return nil
}

func (c console) checkout() error {
	order, err := c.gw.Checkout(c.ctx)
	if err != nil {
		return err
	}
	fmt.Printf("order %s placed, total %.2f\n", order.OrderID, order.Total)
	return nil
}

func (c console) login(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: login <email> [password]")
	}
	password := ""
	if len(args) > 1 {
		password = args[1]
	}
	u, err := c.gw.Login(c.ctx, args[0], password)
	if err != nil {
		return err
	}
	fmt.Printf("welcome, %s\n", u.Name)
	return nil
}

func (c console) showUser() error {
	u, err := c.gw.User(c.ctx)
	if err != nil {
		return err
	}
	if u == nil {
		fmt.Println("not signed in")
		return nil
	}
	fmt.Printf("%s <%s>\n", u.Name, u.Email)
	return nil
}

// Theme is local presentation state, it never goes through the
// gateway.
func (c *console) toggleTheme() error {
	t, err := c.svc.ToggleTheme()
	if err != nil {
		return err
	}
	fmt.Printf("%s theme\n", t)
	return nil
}

func printProduct(p domain.Product) {
	discount := ""
	if p.Discounted() {
		discount = fmt.Sprintf(" (was %.2f)", p.OriginalPrice)
	}
	fmt.Printf("[%s] %-24s %8.2f%s  %s  %.1f★  stock:%d\n",
		p.ProductID, p.Name, p.Price, discount, p.Category, p.Rating, p.Stock)
}
