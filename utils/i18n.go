package utils

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs for user-facing responses.
const (
	MsgInternal            = "internal"
	MsgValidation          = "validation"
	MsgMissingFields       = "missing_fields"
	MsgImageRequired       = "image_required"
	MsgImageInvalid        = "image_invalid"
	MsgUploadFailed        = "upload_failed"
	MsgProductNotFound     = "product_not_found"
	MsgProductsLoadFailed  = "products_load_failed"
	MsgProductSaved        = "product_saved"
	MsgProductUpdated      = "product_updated"
	MsgProductDeleted      = "product_deleted"
	MsgProductSaveFailed   = "product_save_failed"
	MsgBookingSubmitted    = "booking_submitted"
	MsgBookingSubmitFailed = "booking_submit_failed"
	MsgBookingsLoadFailed  = "bookings_load_failed"
	MsgBookingNotFound     = "booking_not_found"
	MsgStatusUpdated       = "status_updated"
	MsgStatusUpdateFailed  = "status_update_failed"
	MsgBookingDeleted      = "booking_deleted"
	MsgBookingDeleteFailed = "booking_delete_failed"
	MsgConfirmRequired     = "confirm_required"
	MsgInvalidCredentials  = "invalid_credentials"
	MsgLoginRequired       = "login_required"
	MsgUserExists          = "user_exists"
	MsgUserCreated         = "user_created"
	MsgUserDeleted         = "user_deleted"
	MsgUserNotFound        = "user_not_found"
	MsgUserDeleteForbidden = "user_delete_forbidden"
	MsgUsersLoadFailed     = "users_load_failed"
	MsgSectionLoadFailed   = "section_load_failed"
	MsgLoggedOut           = "logged_out"
	MsgNotFound            = "not_found"
	MsgTooManyRequests     = "too_many_requests"
)

var messages = map[language.Tag]map[string]string{
	language.English: {
		MsgInternal:            "An unexpected error occurred. Please try again later.",
		MsgValidation:          "Some fields are invalid.",
		MsgMissingFields:       "Please fill in all required fields.",
		MsgImageRequired:       "Please upload a product image.",
		MsgImageInvalid:        "Please choose a valid image file.",
		MsgUploadFailed:        "Image upload failed. Please try again.",
		MsgProductNotFound:     "The requested camera was not found.",
		MsgProductsLoadFailed:  "Failed to load products. Please try again later.",
		MsgProductSaved:        "Product added successfully!",
		MsgProductUpdated:      "Product updated successfully!",
		MsgProductDeleted:      "Product deleted successfully.",
		MsgProductSaveFailed:   "An error occurred while saving the product.",
		MsgBookingSubmitted:    "Your booking was sent! We will contact you soon.",
		MsgBookingSubmitFailed: "An error occurred while sending the booking. Please try again later.",
		MsgBookingsLoadFailed:  "Failed to load bookings. Please try again later.",
		MsgBookingNotFound:     "The booking was not found.",
		MsgStatusUpdated:       "Booking status updated.",
		MsgStatusUpdateFailed:  "An error occurred while updating the booking status.",
		MsgBookingDeleted:      "Booking deleted successfully.",
		MsgBookingDeleteFailed: "An error occurred while deleting the booking.",
		MsgConfirmRequired:     "Deletion must be confirmed.",
		MsgInvalidCredentials:  "Invalid email or password.",
		MsgLoginRequired:       "Please log in to continue.",
		MsgUserExists:          "A user with this email already exists.",
		MsgUserCreated:         "User added successfully.",
		MsgUserDeleted:         "User deleted successfully.",
		MsgUserNotFound:        "User not found.",
		MsgUserDeleteForbidden: "This user cannot be deleted.",
		MsgUsersLoadFailed:     "Failed to load users.",
		MsgSectionLoadFailed:   "This section could not be loaded.",
		MsgLoggedOut:           "You have been logged out.",
		MsgNotFound:            "The requested resource was not found.",
		MsgTooManyRequests:     "Too many requests. Please slow down.",
	},
	language.Hebrew: {
		MsgInternal:            "אירעה שגיאה בלתי צפויה. אנא נסה שוב מאוחר יותר.",
		MsgValidation:          "חלק מהשדות אינם תקינים.",
		MsgMissingFields:       "אנא מלא את כל שדות החובה",
		MsgImageRequired:       "אנא העלה תמונה למוצר",
		MsgImageInvalid:        "אנא בחר קובץ תמונה תקין",
		MsgUploadFailed:        "העלאת התמונה נכשלה. אנא נסה שוב.",
		MsgProductNotFound:     "המצלמה המבוקשת לא נמצאה",
		MsgProductsLoadFailed:  "אירעה שגיאה בטעינת המוצרים. אנא נסה שוב מאוחר יותר.",
		MsgProductSaved:        "המוצר נוסף בהצלחה!",
		MsgProductUpdated:      "המוצר עודכן בהצלחה!",
		MsgProductDeleted:      "המוצר נמחק בהצלחה",
		MsgProductSaveFailed:   "אירעה שגיאה בשמירת המוצר",
		MsgBookingSubmitted:    "ההזמנה נשלחה בהצלחה! ניצור איתך קשר בהקדם.",
		MsgBookingSubmitFailed: "אירעה שגיאה בשליחת ההזמנה. אנא נסה שוב מאוחר יותר.",
		MsgBookingsLoadFailed:  "אירעה שגיאה בטעינת ההזמנות. אנא נסה שוב מאוחר יותר.",
		MsgBookingNotFound:     "ההזמנה לא נמצאה",
		MsgStatusUpdated:       "סטטוס ההזמנה עודכן",
		MsgStatusUpdateFailed:  "אירעה שגיאה בעדכון סטטוס ההזמנה.",
		MsgBookingDeleted:      "ההזמנה נמחקה בהצלחה",
		MsgBookingDeleteFailed: "אירעה שגיאה במחיקת ההזמנה.",
		MsgConfirmRequired:     "יש לאשר את המחיקה",
		MsgInvalidCredentials:  "אימייל או סיסמה שגויים",
		MsgLoginRequired:       "אנא התחבר כדי להמשיך",
		MsgUserExists:          "משתמש עם כתובת דוא״ל זו כבר קיים במערכת",
		MsgUserCreated:         "המשתמש נוסף בהצלחה",
		MsgUserDeleted:         "המשתמש נמחק בהצלחה",
		MsgUserNotFound:        "המשתמש לא נמצא",
		MsgUserDeleteForbidden: "לא ניתן למחוק משתמש זה",
		MsgUsersLoadFailed:     "אירעה שגיאה בטעינת המשתמשים",
		MsgSectionLoadFailed:   "לא ניתן היה לטעון חלק זה",
		MsgLoggedOut:           "התנתקת בהצלחה",
		MsgNotFound:            "המשאב המבוקש לא נמצא",
		MsgTooManyRequests:     "יותר מדי בקשות. אנא המתן מעט.",
	},
}

var (
	bundle     *i18n.Bundle
	bundleOnce sync.Once
)

func getBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		for tag, msgs := range messages {
			for id, text := range msgs {
				if err := bundle.AddMessages(tag, &i18n.Message{ID: id, Other: text}); err != nil {
					GetLogger().Sugar().Errorf("i18n: failed to add message %s: %v", id, err)
				}
			}
		}
	})
	return bundle
}

// Localize returns the message for id in the best language among langs (Accept-Language values).
func Localize(id string, langs ...string) string {
	localizer := i18n.NewLocalizer(getBundle(), langs...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return messages[language.English][id]
	}
	return msg
}

// T localizes id using the request's Accept-Language header.
func T(c *gin.Context, id string) string {
	return Localize(id, c.GetHeader("Accept-Language"))
}

var langMatcher = language.NewMatcher([]language.Tag{language.English, language.Hebrew})

// Lang returns "he" or "en" for the request's Accept-Language header.
func Lang(c *gin.Context) string {
	tag, _ := language.MatchStrings(langMatcher, c.GetHeader("Accept-Language"))
	base, _ := tag.Base()
	if base.String() == "he" {
		return "he"
	}
	return "en"
}
