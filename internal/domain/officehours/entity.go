package officehours

// OfficeHours is a department's configured working window. Times are
// zero-padded "HH:MM:SS" strings; attendance status derivation compares them
// lexically, which for this format matches chronological order.
type OfficeHours struct {
	ID           int64
	DepartmentID int64
	TimeStart    string
	TimeEnd      string
}
