package entity

type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

/*
Mysql Schema:

CREATE TABLE users (
	id INT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(50) NOT NULL UNIQUE,
	password VARCHAR(255) NOT NULL -- bcrypt hash
);
*/
