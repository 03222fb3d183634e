package books

type BookForm struct {
	Title   string `form:"title" mod:"trim" validate:"required" errormsg:"Title must not be empty."`
	Author  string `form:"author" mod:"trim" validate:"required" errormsg:"Author must be specified."`
	Summary string `form:"summary" mod:"trim" validate:"required" errormsg:"Summary must not be empty."`
	ISBN    string `form:"isbn" mod:"trim" validate:"required" errormsg:"ISBN must not be empty."`
	// Genre holds the checked genre ids; an empty selection is allowed.
	Genre []string `form:"genre"`
}

type deleteBookForm struct {
	BookID string `form:"bookid" mod:"trim"`
}
