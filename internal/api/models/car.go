package models

// Car is a single catalog listing. ID is the mapping key; it is assigned by
// the store on insert and never reused after a delete.
type Car struct {
	ID    int64  `db:"id"`
	Brand string `db:"brand"`
	Model string `db:"model"`
	Year  int    `db:"year"`
	Price int    `db:"price"`
	Color string `db:"color"`
}

// CarForm carries the fields of the create/update forms. Year and Price bind
// as integers so malformed input fails at the binding step, before any store
// access.
type CarForm struct {
	Brand string `form:"brand" validate:"required"`
	Model string `form:"model" validate:"required"`
	Year  int    `form:"year" validate:"required"`
	Price int    `form:"price" validate:"required"`
	Color string `form:"color" validate:"required"`
}

// Car builds a Car from the form fields. The id is left zero; the store
// assigns it on insert.
func (f *CarForm) Car() Car {
	return Car{
		Brand: f.Brand,
		Model: f.Model,
		Year:  f.Year,
		Price: f.Price,
		Color: f.Color,
	}
}

// SearchForm is the body of POST /search.
type SearchForm struct {
	ID int64 `form:"id" validate:"required"`
}
