package request

// Shared validation texts.
const (
	msgRequired      = "שדה חובה"
	msgInvalidEmail  = "אימייל לא תקין"
	msgPasswordMin6  = "סיסמה חייבת להכיל לפחות 6 תווים"
	msgPasswordMin8  = "סיסמה חייבת להכיל לפחות 8 תווים"
	msgPasswordMatch = "הסיסמאות לא תואמות"
	msgInvalidPhone  = "מספר טלפון לא תקין"
	msgInvalidZip    = "מיקוד לא תקין"
)
