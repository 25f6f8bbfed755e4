package domain

// Category is a user-defined text label grouping transactions. It is not a
// foreign key: transactions carry the category name, so deleting a Category
// leaves historical transactions untouched.
type Category struct {
	ID     int    `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

type CategoryRepository interface {
	FindByUser(userID string) ([]Category, error)
	FindByName(userID, name string) (*Category, error)
	Save(category *Category) error
	Delete(userID string, categoryID int) error
}
