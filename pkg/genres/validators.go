package genres

type GenreForm struct {
	Name string `form:"name" mod:"trim" validate:"required,min=3,max=100" errormsg:"Genre name must contain between 3 and 100 characters."`
}

type deleteGenreForm struct {
	GenreID string `form:"genreid" mod:"trim"`
}
