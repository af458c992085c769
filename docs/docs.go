package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "Storefront and admin back-office API for the ShopEase store.",
        "title": "ShopEase API",
        "version": "1.0"
    },
    "host": "localhost:3001",
    "basePath": "/api",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Check if server is running",
                "responses": {
                    "200": {
                        "description": "Server is healthy"
                    }
                }
            }
        },
        "/products": {
            "get": {
                "tags": ["Storefront"],
                "summary": "List Products",
                "description": "List all products in the catalog",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "Array of products"
                    }
                }
            }
        },
        "/orders": {
            "get": {
                "tags": ["Storefront"],
                "summary": "List Orders",
                "description": "List all orders",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "Array of orders"
                    }
                }
            },
            "post": {
                "tags": ["Storefront"],
                "summary": "Checkout",
                "description": "Create an order from cart contents",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "order",
                        "description": "Cart items, customer details and total",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "items": {
                                    "type": "array",
                                    "items": {"type": "object"}
                                },
                                "customer": {"type": "object"},
                                "total": {"type": "number", "example": 35}
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created order"
                    },
                    "400": {
                        "description": "Validation failed"
                    }
                }
            }
        },
        "/admin/login": {
            "post": {
                "tags": ["Admin"],
                "summary": "Admin Login",
                "description": "Login with admin email and password",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "credentials",
                        "description": "Login credentials",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "email": {
                                    "type": "string",
                                    "example": "admin@shopease.com"
                                },
                                "password": {
                                    "type": "string",
                                    "example": "admin123"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Token and admin profile"
                    },
                    "401": {
                        "description": "Invalid credentials"
                    }
                }
            }
        },
        "/admin/verify": {
            "get": {
                "tags": ["Admin"],
                "security": [{"BearerAuth": []}],
                "summary": "Verify Token",
                "description": "Verify the bearer credential and return the admin profile",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "Admin profile"
                    },
                    "401": {
                        "description": "Invalid token"
                    }
                }
            }
        },
        "/admin/products": {
            "post": {
                "tags": ["Admin"],
                "security": [{"BearerAuth": []}],
                "summary": "Create Product",
                "description": "Create a product and prepend it to the catalog",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {
                        "description": "Created product"
                    },
                    "400": {
                        "description": "Validation failed"
                    }
                }
            }
        },
        "/admin/products/{id}": {
            "put": {
                "tags": ["Admin"],
                "security": [{"BearerAuth": []}],
                "summary": "Update Product",
                "description": "Apply a partial update to a product",
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Updated product"
                    },
                    "404": {
                        "description": "Product not found"
                    }
                }
            },
            "delete": {
                "tags": ["Admin"],
                "security": [{"BearerAuth": []}],
                "summary": "Delete Product",
                "description": "Delete a product. Succeeds even when the id is absent.",
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Deletion acknowledged"
                    }
                }
            }
        },
        "/admin/orders/{id}": {
            "put": {
                "tags": ["Admin"],
                "security": [{"BearerAuth": []}],
                "summary": "Update Order Status",
                "description": "Set the status of an order",
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Updated order"
                    },
                    "400": {
                        "description": "Invalid order status"
                    },
                    "404": {
                        "description": "Order not found"
                    }
                }
            }
        },
        "/admin/settings": {
            "get": {
                "tags": ["Admin"],
                "security": [{"BearerAuth": []}],
                "summary": "Get Settings",
                "responses": {
                    "200": {
                        "description": "Store settings"
                    }
                }
            },
            "put": {
                "tags": ["Admin"],
                "security": [{"BearerAuth": []}],
                "summary": "Update Settings",
                "description": "Shallow-merge the provided fields into the settings record",
                "responses": {
                    "200": {
                        "description": "Merged settings"
                    }
                }
            }
        },
        "/admin/reports/summary": {
            "get": {
                "tags": ["Reports"],
                "security": [{"BearerAuth": []}],
                "summary": "Summary Report",
                "responses": {
                    "200": {
                        "description": "Totals across products, orders, users and revenue"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type 'Bearer' followed by a space and the admin token"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3001",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "ShopEase API",
	Description:      "Storefront and admin back-office API for the ShopEase store.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
