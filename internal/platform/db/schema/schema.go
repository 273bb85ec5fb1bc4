// Package schema defines the GORM models for the four persisted tables.
//
// Foreign keys are plain nullable integer columns. The association fields exist only so that
// AutoMigrate emits the FOREIGN KEY constraints; repositories never preload them.
package schema

// User is the row of the user table.
type User struct {
	ID       uint   `gorm:"primaryKey"`
	Email    string `gorm:"size:120;uniqueIndex;not null"`
	Password string `gorm:"size:80;not null"`
	// IsActive is a pointer so that an explicit false is not replaced by the column default.
	IsActive *bool `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "user"
}

// Person is the row of the person table.
type Person struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:120;not null"`
}

// TableName returns the table name for GORM.
func (Person) TableName() string {
	return "person"
}

// Planet is the row of the planet table.
type Planet struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:120;not null"`
}

// TableName returns the table name for GORM.
func (Planet) TableName() string {
	return "planet"
}

// Favorite links a user to a person or a planet. Duplicate rows are allowed.
type Favorite struct {
	ID       uint  `gorm:"primaryKey"`
	UserID   *uint `gorm:"index"`
	PersonID *uint `gorm:"index"`
	PlanetID *uint `gorm:"index"`

	User   *User   `gorm:"foreignKey:UserID"`
	Person *Person `gorm:"foreignKey:PersonID"`
	Planet *Planet `gorm:"foreignKey:PlanetID"`
}

// TableName returns the table name for GORM.
func (Favorite) TableName() string {
	return "favorite"
}

// Models returns every model in dependency order.
func Models() []any {
	return []any{&User{}, &Person{}, &Planet{}, &Favorite{}}
}
