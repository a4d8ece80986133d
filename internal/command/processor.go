// Package command implements the script front-end: it parses one command
// line into exactly one service call and can replay a whole file of lines.
package command

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"smartstore/internal/domain"
	"smartstore/internal/service"

	"go.uber.org/zap"
)

// CommandProcessor translates command lines into StoreService calls.
// A failed line never mutates state and never aborts the rest of a batch.
type CommandProcessor struct {
	service *service.StoreService
	auth    *service.AuthenticationService
	token   string
	out     io.Writer
	errOut  io.Writer
	logger  *zap.Logger
}

func NewCommandProcessor(svc *service.StoreService, auth *service.AuthenticationService, token string, out, errOut io.Writer, logger *zap.Logger) *CommandProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommandProcessor{
		service: svc,
		auth:    auth,
		token:   token,
		out:     out,
		errOut:  errOut,
		logger:  logger,
	}
}

// ProcessCommand interprets one line. Blank lines are ignored. The returned
// error carries the parse or service failure; output for successful commands
// goes to the processor's output writer.
func (p *CommandProcessor) ProcessCommand(line string) error {
	tokens, err := Tokenize(line)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}

	verb := strings.ToLower(tokens[0])
	switch verb {
	case "define":
		return p.define(tokens, line)
	case "show":
		return p.show(tokens, line)
	case "update":
		return p.update(tokens, line)
	case "assign":
		return p.assign(tokens, line)
	case "get_customer_basket":
		return p.getCustomerBasket(tokens, line)
	case "add_basket_item":
		return p.addBasketItem(tokens, line)
	case "remove_basket_item":
		return p.removeBasketItem(tokens, line)
	case "clear_basket":
		return p.clearBasket(tokens, line)
	case "create_event":
		return p.createEvent(tokens, line)
	case "create":
		return p.createCommand(tokens, line)
	case "delete":
		return p.delete(tokens, line)
	case "register_user":
		return p.registerUser(tokens, line)
	case "update_user":
		return p.updateUser(tokens, line)
	case "delete_user":
		return p.deleteUser(tokens, line)
	default:
		return domain.NewParseError("process command", fmt.Sprintf("unknown command in line: %s", line))
	}
}

// ProcessCommandFile replays a script file line by line. A bad command line
// is reported to the error stream and processing continues; an unreadable
// file is reported and processing stops.
func (p *CommandProcessor) ProcessCommandFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(p.errOut, "cannot open command file: %v\n", err)
		return domain.NewIOFailure("process command file", err.Error())
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := p.ProcessCommand(line); err != nil {
			fmt.Fprintf(p.errOut, "line %d: %v\n", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(p.errOut, "error reading command file: %v\n", err)
		return domain.NewIOFailure("process command file", err.Error())
	}
	return nil
}

// expectLen fails with a parse error when a command has the wrong number of
// tokens.
func expectLen(tokens []string, n int, line string) error {
	if len(tokens) != n {
		return domain.NewParseError("process command", fmt.Sprintf("expected %d tokens, got %d in line: %s", n, len(tokens), line))
	}
	return nil
}

// keyword fails with a parse error when tokens[i] is not the expected
// keyword, and otherwise returns the following value token.
func keyword(tokens []string, i int, key, line string) (string, error) {
	if strings.ToLower(tokens[i]) != key {
		return "", domain.NewParseError("process command", fmt.Sprintf("expected keyword %q in line: %s", key, line))
	}
	return tokens[i+1], nil
}

func parseInt(value, line string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, domain.NewParseError("process command", fmt.Sprintf("expected integer, got %q in line: %s", value, line))
	}
	return n, nil
}

func (p *CommandProcessor) define(tokens []string, line string) error {
	if len(tokens) < 3 {
		return domain.NewParseError("process command", fmt.Sprintf("incomplete define in line: %s", line))
	}
	switch strings.ToLower(tokens[1]) {
	case "store":
		return p.defineStore(tokens, line)
	case "aisle":
		return p.defineAisle(tokens, line)
	case "shelf":
		return p.defineShelf(tokens, line)
	case "product":
		return p.defineProduct(tokens, line)
	case "inventory":
		return p.defineInventory(tokens, line)
	case "customer":
		return p.defineCustomer(tokens, line)
	case "basket":
		return p.defineBasket(tokens, line)
	case "device":
		return p.defineDevice(tokens, line)
	default:
		return domain.NewParseError("process command", fmt.Sprintf("unknown define target in line: %s", line))
	}
}

func (p *CommandProcessor) defineStore(tokens []string, line string) error {
	if err := expectLen(tokens, 7, line); err != nil {
		return err
	}
	id := tokens[2]
	name, err := keyword(tokens, 3, "name", line)
	if err != nil {
		return err
	}
	address, err := keyword(tokens, 5, "address", line)
	if err != nil {
		return err
	}
	store, err := p.service.ProvisionStore(id, name, address, p.token)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "defined store %s\n", store.ID)
	return nil
}

func (p *CommandProcessor) defineAisle(tokens []string, line string) error {
	if err := expectLen(tokens, 9, line); err != nil {
		return err
	}
	storeID, aisleID, err := splitStoreAisle("define aisle", tokens[2])
	if err != nil {
		return err
	}
	name, err := keyword(tokens, 3, "name", line)
	if err != nil {
		return err
	}
	description, err := keyword(tokens, 5, "description", line)
	if err != nil {
		return err
	}
	locationValue, err := keyword(tokens, 7, "location", line)
	if err != nil {
		return err
	}
	location, err := domain.ParseAisleLocation(locationValue)
	if err != nil {
		return err
	}
	aisle, err := p.service.ProvisionAisle(storeID, aisleID, name, description, location, p.token)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "defined aisle %s:%s\n", storeID, aisle.Number)
	return nil
}

func (p *CommandProcessor) defineShelf(tokens []string, line string) error {
	if err := expectLen(tokens, 11, line); err != nil {
		return err
	}
	storeID, aisleID, shelfID, err := splitInventoryLocation("define shelf", tokens[2])
	if err != nil {
		return err
	}
	name, err := keyword(tokens, 3, "name", line)
	if err != nil {
		return err
	}
	levelValue, err := keyword(tokens, 5, "level", line)
	if err != nil {
		return err
	}
	level, err := domain.ParseShelfLevel(levelValue)
	if err != nil {
		return err
	}
	description, err := keyword(tokens, 7, "description", line)
	if err != nil {
		return err
	}
	temperatureValue, err := keyword(tokens, 9, "temperature", line)
	if err != nil {
		return err
	}
	temperature, err := domain.ParseTemperature(temperatureValue)
	if err != nil {
		return err
	}
	shelf, err := p.service.ProvisionShelf(storeID, aisleID, shelfID, name, level, description, temperature, p.token)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "defined shelf %s:%s:%s\n", storeID, aisleID, shelf.ID)
	return nil
}

func (p *CommandProcessor) defineProduct(tokens []string, line string) error {
	if err := expectLen(tokens, 15, line); err != nil {
		return err
	}
	id := tokens[2]
	name, err := keyword(tokens, 3, "name", line)
	if err != nil {
		return err
	}
	description, err := keyword(tokens, 5, "description", line)
	if err != nil {
		return err
	}
	size, err := keyword(tokens, 7, "size", line)
	if err != nil {
		return err
	}
	category, err := keyword(tokens, 9, "category", line)
	if err != nil {
		return err
	}
	priceValue, err := keyword(tokens, 11, "unit_price", line)
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(priceValue, 64)
	if err != nil {
		return domain.NewParseError("process command", fmt.Sprintf("expected number, got %q in line: %s", priceValue, line))
	}
	temperatureValue, err := keyword(tokens, 13, "temperature", line)
	if err != nil {
		return err
	}
	temperature, err := domain.ParseTemperature(temperatureValue)
	if err != nil {
		return err
	}
	product, err := p.service.ProvisionProduct(id, name, description, size, category, price, temperature, p.token)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "defined product %s\n", product.ID)
	return nil
}

func (p *CommandProcessor) defineInventory(tokens []string, line string) error {
	if err := expectLen(tokens, 13, line); err != nil {
		return err
	}
	id := tokens[2]
	locationValue, err := keyword(tokens, 3, "location", line)
	if err != nil {
		return err
	}
	storeID, aisleID, shelfID, err := splitInventoryLocation("define inventory", locationValue)
	if err != nil {
		return err
	}
	capacityValue, err := keyword(tokens, 5, "capacity", line)
	if err != nil {
		return err
	}
	capacity, err := parseInt(capacityValue, line)
	if err != nil {
		return err
	}
	countValue, err := keyword(tokens, 7, "count", line)
	if err != nil {
		return err
	}
	count, err := parseInt(countValue, line)
	if err != nil {
		return err
	}
	typeValue, err := keyword(tokens, 9, "type", line)
	if err != nil {
		return err
	}
	invType, err := domain.ParseInventoryType(typeValue)
	if err != nil {
		return err
	}
	productID, err := keyword(tokens, 11, "product", line)
	if err != nil {
		return err
	}
	inventory, err := p.service.ProvisionInventory(id, storeID, aisleID, shelfID, capacity, count, productID, invType, p.token)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "defined inventory %s\n", inventory.ID)
	return nil
}

func (p *CommandProcessor) defineCustomer(tokens []string, line string) error {
	if err := expectLen(tokens, 13, line); err != nil {
		return err
	}
	id := tokens[2]
	firstName, err := keyword(tokens, 3, "first_name", line)
	if err != nil {
		return err
	}
	lastName, err := keyword(tokens, 5, "last_name", line)
	if err != nil {
		return err
	}
	typeValue, err := keyword(tokens, 7, "type", line)
	if err != nil {
		return err
	}
	customerType, err := domain.ParseCustomerType(typeValue)
	if err != nil {
		return err
	}
	email, err := keyword(tokens, 9, "email_address", line)
	if err != nil {
		return err
	}
	account, err := keyword(tokens, 11, "account", line)
	if err != nil {
		return err
	}
	customer, err := p.service.ProvisionCustomer(id, firstName, lastName, customerType, email, account, p.token)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "defined customer %s\n", customer.ID)
	return nil
}

func (p *CommandProcessor) defineBasket(tokens []string, line string) error {
	if err := expectLen(tokens, 3, line); err != nil {
		return err
	}
	basket, err := p.service.ProvisionBasket(tokens[2], p.token)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "defined basket %s\n", basket.ID)
	return nil
}

func (p *CommandProcessor) defineDevice(tokens []string, line string) error {
	if err := expectLen(tokens, 9, line); err != nil {
		return err
	}
	id := tokens[2]
	name, err := keyword(tokens, 3, "name", line)
	if err != nil {
		return err
	}
	deviceType, err := keyword(tokens, 5, "type", line)
	if err != nil {
		return err
	}
	locationValue, err := keyword(tokens, 7, "location", line)
	if err != nil {
		return err
	}
	storeID, aisleID, err := splitStoreAisle("define device", locationValue)
	if err != nil {
		return err
	}
	device, err := p.service.ProvisionDevice(id, name, deviceType, storeID, aisleID, p.token)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "defined device %s\n", device.ID())
	return nil
}

func (p *CommandProcessor) show(tokens []string, line string) error {
	if err := expectLen(tokens, 3, line); err != nil {
		return err
	}
	target := strings.ToLower(tokens[1])
	id := tokens[2]
	switch target {
	case "store":
		store, err := p.service.ShowStore(id, p.token)
		if err != nil {
			return err
		}
		fmt.Fprintln(p.out, store.String())
	case "aisle":
		storeID, aisleID, err := splitStoreAisle("show aisle", id)
		if err != nil {
			return err
		}
		aisle, err := p.service.ShowAisle(storeID, aisleID, p.token)
		if err != nil {
			return err
		}
		fmt.Fprintln(p.out, aisle.String())
	case "shelf":
		storeID, aisleID, shelfID, err := splitInventoryLocation("show shelf", id)
		if err != nil {
			return err
		}
		shelf, err := p.service.ShowShelf(storeID, aisleID, shelfID, p.token)
		if err != nil {
			return err
		}
		fmt.Fprintln(p.out, shelf.String())
	case "product":
		product, err := p.service.ShowProduct(id, p.token)
		if err != nil {
			return err
		}
		fmt.Fprintln(p.out, product.String())
	case "inventory":
		inventory, err := p.service.ShowInventory(id, p.token)
		if err != nil {
			return err
		}
		fmt.Fprintln(p.out, inventory.String())
	case "customer":
		customer, err := p.service.ShowCustomer(id, p.token)
		if err != nil {
			return err
		}
		fmt.Fprintln(p.out, customer.String())
	case "device":
		device, err := p.service.ShowDevice(id, p.token)
		if err != nil {
			return err
		}
		fmt.Fprintln(p.out, device.String())
	case "user":
		user, err := p.auth.GetUserByEmail(id)
		if err != nil {
			return err
		}
		fmt.Fprintln(p.out, user.String())
	case "basket_items":
		basket, err := p.service.ShowBasket(id, p.token)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.out, "basket %s items:\n", basket.ID)
		products := basket.Products()
		for _, productID := range basket.ProductIDs() {
			fmt.Fprintf(p.out, "  %s %d\n", productID, products[productID])
		}
	default:
		return domain.NewParseError("process command", fmt.Sprintf("unknown show target in line: %s", line))
	}
	return nil
}

func (p *CommandProcessor) update(tokens []string, line string) error {
	if err := expectLen(tokens, 5, line); err != nil {
		return err
	}
	switch strings.ToLower(tokens[1]) {
	case "inventory":
		deltaValue, err := keyword(tokens, 3, "update_count", line)
		if err != nil {
			return err
		}
		delta, err := parseInt(deltaValue, line)
		if err != nil {
			return err
		}
		inventory, err := p.service.UpdateInventory(tokens[2], delta, p.token)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.out, "updated inventory %s count %d\n", inventory.ID, inventory.Count)
	case "customer":
		locationValue, err := keyword(tokens, 3, "location", line)
		if err != nil {
			return err
		}
		storeID, aisleID, err := splitStoreAisle("update customer", locationValue)
		if err != nil {
			return err
		}
		customer, err := p.service.UpdateCustomer(tokens[2], storeID, aisleID, p.token)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.out, "updated customer %s location %s\n", customer.ID, customer.Location)
	default:
		return domain.NewParseError("process command", fmt.Sprintf("unknown update target in line: %s", line))
	}
	return nil
}

func (p *CommandProcessor) delete(tokens []string, line string) error {
	if err := expectLen(tokens, 3, line); err != nil {
		return err
	}
	if strings.ToLower(tokens[1]) != "store" {
		return domain.NewParseError("process command", fmt.Sprintf("unknown delete target in line: %s", line))
	}
	if err := p.service.DeleteStore(tokens[2], p.token); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "deleted store %s\n", tokens[2])
	return nil
}

func (p *CommandProcessor) assign(tokens []string, line string) error {
	if err := expectLen(tokens, 5, line); err != nil {
		return err
	}
	if strings.ToLower(tokens[1]) != "basket" {
		return domain.NewParseError("process command", fmt.Sprintf("unknown assign target in line: %s", line))
	}
	basketID := tokens[2]
	customerID, err := keyword(tokens, 3, "customer", line)
	if err != nil {
		return err
	}
	if err := p.service.AssignCustomerBasket(customerID, basketID, p.token); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "assigned basket %s to customer %s\n", basketID, customerID)
	return nil
}

func (p *CommandProcessor) getCustomerBasket(tokens []string, line string) error {
	if err := expectLen(tokens, 2, line); err != nil {
		return err
	}
	basket, err := p.service.GetCustomerBasket(tokens[1], p.token)
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, basket.String())
	return nil
}

func (p *CommandProcessor) addBasketItem(tokens []string, line string) error {
	if err := expectLen(tokens, 6, line); err != nil {
		return err
	}
	basketID := tokens[1]
	productID, err := keyword(tokens, 2, "product", line)
	if err != nil {
		return err
	}
	countValue, err := keyword(tokens, 4, "item_count", line)
	if err != nil {
		return err
	}
	count, err := parseInt(countValue, line)
	if err != nil {
		return err
	}
	if err := p.service.AddBasketProduct(basketID, productID, count, p.token); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "added %d of product %s to basket %s\n", count, productID, basketID)
	return nil
}

func (p *CommandProcessor) removeBasketItem(tokens []string, line string) error {
	if err := expectLen(tokens, 6, line); err != nil {
		return err
	}
	basketID := tokens[1]
	productID, err := keyword(tokens, 2, "product", line)
	if err != nil {
		return err
	}
	countValue, err := keyword(tokens, 4, "item_count", line)
	if err != nil {
		return err
	}
	count, err := parseInt(countValue, line)
	if err != nil {
		return err
	}
	if err := p.service.RemoveBasketProduct(basketID, productID, count, p.token); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "removed %d of product %s from basket %s\n", count, productID, basketID)
	return nil
}

func (p *CommandProcessor) clearBasket(tokens []string, line string) error {
	if err := expectLen(tokens, 2, line); err != nil {
		return err
	}
	if err := p.service.ClearBasket(tokens[1], p.token); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "cleared basket %s\n", tokens[1])
	return nil
}

func (p *CommandProcessor) createEvent(tokens []string, line string) error {
	if len(tokens) < 4 {
		return domain.NewParseError("process command", fmt.Sprintf("incomplete create_event in line: %s", line))
	}
	deviceID := tokens[1]
	if strings.ToLower(tokens[2]) != "event" {
		return domain.NewParseError("process command", fmt.Sprintf("expected keyword %q in line: %s", "event", line))
	}
	payload := strings.Join(tokens[3:], " ")
	if err := p.service.RaiseEvent(deviceID, payload, p.token); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "event raised for device %s\n", deviceID)
	return nil
}

func (p *CommandProcessor) createCommand(tokens []string, line string) error {
	if len(tokens) < 5 || strings.ToLower(tokens[1]) != "command" {
		return domain.NewParseError("process command", fmt.Sprintf("unknown create target in line: %s", line))
	}
	deviceID := tokens[2]
	if strings.ToLower(tokens[3]) != "message" {
		return domain.NewParseError("process command", fmt.Sprintf("expected keyword %q in line: %s", "message", line))
	}
	payload := strings.Join(tokens[4:], " ")
	if err := p.service.IssueCommand(deviceID, payload, p.token); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "command issued to device %s\n", deviceID)
	return nil
}

func (p *CommandProcessor) registerUser(tokens []string, line string) error {
	if err := expectLen(tokens, 4, line); err != nil {
		return err
	}
	user, err := p.auth.RegisterUser(tokens[1], tokens[2], tokens[3])
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "registered user %s\n", user.Email)
	return nil
}

func (p *CommandProcessor) updateUser(tokens []string, line string) error {
	if err := expectLen(tokens, 4, line); err != nil {
		return err
	}
	user, err := p.auth.UpdateUser(tokens[1], tokens[2], tokens[3])
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "updated user %s\n", user.Email)
	return nil
}

func (p *CommandProcessor) deleteUser(tokens []string, line string) error {
	if err := expectLen(tokens, 2, line); err != nil {
		return err
	}
	if err := p.auth.DeleteUser(tokens[1]); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "deleted user %s\n", tokens[1])
	return nil
}
