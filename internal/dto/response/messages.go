package response

// User-facing notification texts returned in the response envelope.
const (
	MsgLoginFailed      = "אימייל או סיסמה שגויים"
	MsgLogoutSuccess    = "התנתקת בהצלחה"
	MsgSignUpSuccess    = "הרשמה הצליחה! מעביר להתחברות..."
	MsgSignUpFailed     = "שגיאה בהרשמה"
	MsgEmailExists      = "אימייל זה כבר קיים במערכת"
	MsgProfileUpdated   = "הפרופיל עודכן בהצלחה"
	MsgProfileFailed    = "שגיאה בעדכון הפרופיל"
	MsgProductAdded     = "המוצר נוסף בהצלחה"
	MsgProductFailed    = "שגיאה בהוספת המוצר"
	MsgProductDeleted   = "המוצר נמחק בהצלחה"
	MsgProductDelFailed = "שגיאה במחיקת המוצר"
	MsgImportDone       = "ייבוא המוצרים הסתיים"
	MsgImportFailed     = "שגיאה בייבוא המוצרים"
	MsgReviewAdded      = "חוות הדעת נוספה בהצלחה"
	MsgReviewFailed     = "שגיאה בהוספת חוות הדעת"
	MsgReviewDeleted    = "חוות הדעת נמחקה"
	MsgReviewDelFailed  = "שגיאה במחיקת חוות הדעת"
	MsgLoadFailed       = "שגיאה בטעינת הנתונים"
	MsgValidationFailed = "יש לתקן את השדות המסומנים"

	MsgNoProducts      = "לא נמצאו מוצרים להצגה."
	MsgEndOfFeed       = "בינתיים אין עוד מוצרים להציג :)"
	MsgNoReviews       = "אין חוות דעת עדיין."
	MsgBeFirstToReview = " היה הראשון להוסיף!"
)
