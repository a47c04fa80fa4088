package repository

import (
	bookingRepo "tidify/database/repository/booking"
	userRepo "tidify/database/repository/user"
	workerRepo "tidify/database/repository/worker"
)

// Re-export the UserRepository interface and constructor.
type UserRepository = userRepo.UserRepository

var NewGitHubUserRepo = userRepo.NewGitHubUserRepo

// Re-export the WorkerRepository interface and constructor.
type WorkerRepository = workerRepo.WorkerRepository

var NewGitHubWorkerRepo = workerRepo.NewGitHubWorkerRepo

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

var NewGitHubBookingRepo = bookingRepo.NewGitHubBookingRepo
