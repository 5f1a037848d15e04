// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

// Route pattern constants for chi router registration.
const (
	// RouteRoot is the home page.
	RouteRoot = "/"
	// RouteAbout is the about page.
	RouteAbout = "/about"
	// RouteWhyChooseUs is the why-choose-us page.
	RouteWhyChooseUs = "/why-choose-us"
	// RouteExplore is the full catalog page.
	RouteExplore = "/explore"
	// RouteContact is the contact form.
	RouteContact = "/contact"
	// RouteReviews is the review form and list.
	RouteReviews = "/reviews"

	// RouteLogin is the login route.
	RouteLogin = "/login"
	// RouteRegister is the registration route.
	RouteRegister = "/register"
	// RouteLogout is the logout route.
	RouteLogout = "/logout"
	// RouteProfile is the profile page of the logged-in user.
	RouteProfile = "/profile"

	// RouteAdmin is the prefix of the admin routes.
	RouteAdmin = "/admin"
	// RouteDashboard is the admin dashboard route.
	RouteDashboard = "/dashboard"
	// RouteContacts is the admin contact list route.
	RouteContacts = "/contacts"
	// RouteUpload is the admin photo upload route.
	RouteUpload = "/upload"

	// RouteHealth is the health check route.
	RouteHealth = "/health"
	// RouteStatic is the static asset prefix.
	RouteStatic = "/static"
)

const (
	redirectAdminUpload = RouteAdmin + RouteUpload
	redirectLogin       = RouteLogin
)

// Listing sizes.
const (
	homeReviewsLimit      = 3
	reviewsPageLimit      = 20
	dashboardRecentLimit  = 5
	maxUploadFormOverhead = 1 << 20 // multipart headers and boundaries
)

// Flash messages.
const (
	msgLoginRequired       = "Please log in to access this page."
	msgAdminRequired       = "Admin access required."
	msgInvalidForm         = "❌ Invalid form data."
	msgRequiredFields      = "❌ Please fill in all required fields."
	msgInvalidStars        = "❌ Please choose a rating between 1 and 5 stars."
	msgContactThanks       = "✅ Thank you for contacting us!"
	msgReviewThanks        = "✅ Thank you for your review!"
	msgLoginSuccess        = "✅ Login successful!"
	msgInvalidCredentials  = "❌ Invalid username or password."
	msgWeakPassword        = "❌ Password must be at least 6 characters long."
	msgRegisterSuccess     = "✅ Registration successful! Please log in."
	msgAlreadyExists       = "❌ Username or email already exists."
	msgLoggedOut           = "✅ You have been logged out."
	msgUploadNoFile        = "❌ No file selected."
	msgUploadInvalidName   = "❌ Invalid file name."
	msgUploadUnsupported   = "❌ Only JPEG, PNG and WebP images are allowed."
	msgUploadTooLarge      = "❌ The image is too large."
	msgUploadSuccessFormat = "✅ Uploaded %s."
)

// HeaderContentType is the Content-Type HTTP header name.
const HeaderContentType = "Content-Type"
