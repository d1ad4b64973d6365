package admin

import (
	"context"
	"sort"

	"camerastore/models"
	"camerastore/services/product"
	"camerastore/utils"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// Section keys used in Dashboard.Errors.
const (
	SectionUsers    = "users"
	SectionProducts = "products"
	SectionBookings = "bookings"
)

// Dashboard loads the three collections concurrently. A failing section is
// left empty and its message ID is reported under its key.
func (s *DefaultAdminService) Dashboard(ctx context.Context) *models.Dashboard {
	var (
		users                          []models.User
		products                       []models.Product
		bookings                       []models.Booking
		usersErr, productsErr, bookErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() { users, usersErr = s.Users.GetAll(ctx) })
	wg.Go(func() { products, productsErr = s.Products.GetAll(ctx) })
	wg.Go(func() { bookings, bookErr = s.Bookings.GetAll(ctx) })
	wg.Wait()

	d := &models.Dashboard{
		Users:    []models.User{},
		Products: []models.Product{},
		Bookings: []models.Booking{},
	}
	record := func(section string, err error) bool {
		if err == nil {
			return true
		}
		utils.GetLogger().Error("dashboard section failed", zap.String("section", section), zap.Error(err))
		if d.Errors == nil {
			d.Errors = map[string]string{}
		}
		d.Errors[section] = utils.MsgSectionLoadFailed
		return false
	}

	if record(SectionUsers, usersErr) && users != nil {
		d.Users = users
	}
	if record(SectionProducts, productsErr) && products != nil {
		product.SortNewestFirst(products)
		d.Products = products
	}
	if record(SectionBookings, bookErr) && bookings != nil {
		sortBookingsNewestFirst(bookings)
		d.Bookings = bookings
	}

	d.Counts = models.DashboardCounts{
		Users:    len(d.Users),
		Products: len(d.Products),
		Bookings: len(d.Bookings),
	}
	return d
}

func sortBookingsNewestFirst(bookings []models.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}
